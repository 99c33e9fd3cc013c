package unit_test

import (
	"net/http/httptest"
	"testing"

	"blog-community/internal/domain"
	"blog-community/internal/handler"
	"blog-community/internal/middleware"
	"blog-community/tests/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func listTestApp(commentSvc *mocks.CommentService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	h := handler.NewCommentHandler(commentSvc, nil)
	app.Get("/api/v1/posts/:postId/comments", h.List)
	return app
}

func TestCommentHandler_List_Defaults(t *testing.T) {
	postID := uuid.New()
	empty := domain.NewPaginatedResponse([]domain.CommentResponse{}, 1, 20, 0)

	t.Run("Defaults to created_at ascending", func(t *testing.T) {
		commentSvc := new(mocks.CommentService)
		app := listTestApp(commentSvc)

		commentSvc.On("ListTopLevel", mock.Anything, postID, (*uuid.UUID)(nil),
			domain.PaginationParams{Page: 1, PageSize: 20},
			domain.SortByCreatedAt, domain.OrderAsc, true).
			Return(empty, nil).Once()

		req := httptest.NewRequest("GET", "/api/v1/posts/"+postID.String()+"/comments", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		commentSvc.AssertExpectations(t)
	})

	t.Run("Explicit sort and order pass through", func(t *testing.T) {
		commentSvc := new(mocks.CommentService)
		app := listTestApp(commentSvc)

		commentSvc.On("ListTopLevel", mock.Anything, postID, (*uuid.UUID)(nil),
			domain.PaginationParams{Page: 1, PageSize: 20},
			domain.SortByLikes, domain.OrderDesc, false).
			Return(empty, nil).Once()

		req := httptest.NewRequest("GET",
			"/api/v1/posts/"+postID.String()+"/comments?sort=likes&order=desc&include_replies=false", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		commentSvc.AssertExpectations(t)
	})

	t.Run("Rejects unknown sort field", func(t *testing.T) {
		commentSvc := new(mocks.CommentService)
		app := listTestApp(commentSvc)

		req := httptest.NewRequest("GET",
			"/api/v1/posts/"+postID.String()+"/comments?sort=popularity", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		commentSvc.AssertNotCalled(t, "ListTopLevel", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
