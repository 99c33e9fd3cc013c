package service

import (
	"github.com/redis/go-redis/v9"

	"blog-community/internal/config"
	"blog-community/internal/repository"
	"blog-community/internal/service/auth"
	"blog-community/internal/service/comment"
	"blog-community/internal/service/email"
	"blog-community/internal/service/rank"
	"blog-community/internal/service/vote"
)

type Services struct {
	Auth    auth.Service
	Comment comment.Service
	Vote    vote.Service
	Rank    rank.Service
	Email   email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, cfg)

	rankService := rank.NewService(repos.User, repos.Catalog)
	rankService.SetEmailService(emailService)

	commentService := comment.NewService(repos.Comment, repos.Vote, repos.User, repos.Post, rankService, redis)
	voteService := vote.NewService(repos.Comment, repos.Vote, repos.User, rankService, redis)

	return &Services{
		Auth:    authService,
		Comment: commentService,
		Vote:    voteService,
		Rank:    rankService,
		Email:   emailService,
	}
}
