package mocks

import (
	"context"

	"blog-community/internal/domain"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendRankPromotion(ctx context.Context, toEmail, username string, newRank *domain.Rank) error {
	args := m.Called(ctx, toEmail, username, newRank)
	return args.Error(0)
}
