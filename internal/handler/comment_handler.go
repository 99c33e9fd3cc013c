package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blog-community/internal/domain"
	"blog-community/internal/middleware"
	"blog-community/internal/service/comment"
	"blog-community/internal/service/vote"
)

type CommentHandler struct {
	commentService comment.Service
	voteService    vote.Service
}

func NewCommentHandler(commentService comment.Service, voteService vote.Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		voteService:    voteService,
	}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	params := getPaginationParams(c)

	sort := domain.CommentSort(c.Query("sort", string(domain.SortByCreatedAt)))
	if !sort.IsValid() {
		return middleware.BadRequest("Invalid sort field")
	}

	order := domain.SortOrder(c.Query("order", string(domain.OrderAsc)))
	if !order.IsValid() {
		return middleware.BadRequest("Invalid sort order")
	}

	includeReplies := c.QueryBool("include_replies", true)

	result, err := h.commentService.ListTopLevel(c.Context(), postID, currentViewerID(c), params, sort, order, includeReplies)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.commentService.Submit(c.Context(), postID, user, input, middleware.GetClientIP(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.commentService.Edit(c.Context(), commentID, user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	if err := h.commentService.SoftDelete(c.Context(), commentID, user.ID, user.IsAdmin); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}

func (h *CommentHandler) Replies(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	params := getPaginationParams(c)

	result, err := h.commentService.ListReplies(c.Context(), parentID, currentViewerID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Vote(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.CastVoteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.voteService.Cast(c.Context(), commentID, user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CommentHandler) Stats(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("postId"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	stats, err := h.commentService.Stats(c.Context(), postID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// currentViewerID returns nil for anonymous requests so listings stay
// cacheable and carry no per-viewer vote state.
func currentViewerID(c *fiber.Ctx) *uuid.UUID {
	if id := middleware.GetCurrentUserID(c); id != uuid.Nil {
		return &id
	}
	return nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
