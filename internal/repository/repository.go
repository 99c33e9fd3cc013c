package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Vote    VoteRepository
	Catalog CatalogRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Vote:    NewVoteRepository(db),
		Catalog: NewCatalogRepository(db),
	}
}
