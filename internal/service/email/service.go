package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"blog-community/internal/config"
	"blog-community/internal/domain"
)

type Service interface {
	SendRankPromotion(ctx context.Context, toEmail, username string, newRank *domain.Rank) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Blog Community <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendRankPromotion(ctx context.Context, toEmail, username string, newRank *domain.Rank) error {
	data := struct {
		Title     string
		Name      string
		RankName  string
		RankIcon  string
		RankColor string
		Link      string
	}{
		Title:     "Rank promotion",
		Name:      username,
		RankName:  newRank.DisplayName,
		RankIcon:  newRank.Icon,
		RankColor: newRank.Color,
		Link:      fmt.Sprintf("https://%s", s.config.Domain),
	}
	subject := fmt.Sprintf("You have been promoted to %s!", newRank.DisplayName)
	return s.sendEmail(toEmail, subject, "rank_promotion.html", data)
}
