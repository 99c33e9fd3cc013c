package handler

import "blog-community/internal/service"

type Handlers struct {
	Comment *CommentHandler
	Rank    *RankHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Comment: NewCommentHandler(services.Comment, services.Vote),
		Rank:    NewRankHandler(services.Rank),
	}
}
