package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Exists(ctx context.Context, id uuid.UUID, requirePublished bool) (bool, error) {
	args := m.Called(ctx, id, requirePublished)
	return args.Bool(0), args.Error(1)
}
