package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blog-community/internal/domain"
	"blog-community/internal/repository"
	"blog-community/internal/service/rank"
)

const maxContentLength = 2000

type Service interface {
	Submit(ctx context.Context, postID uuid.UUID, author *domain.User, input domain.CreateCommentInput, ipAddress string) (*domain.CommentResponse, error)
	Edit(ctx context.Context, commentID, editorID uuid.UUID, input domain.UpdateCommentInput) (*domain.CommentResponse, error)
	SoftDelete(ctx context.Context, commentID, requesterID uuid.UUID, requesterIsAdmin bool) error
	ListTopLevel(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder, includeReplies bool) (domain.PaginatedResponse[domain.CommentResponse], error)
	ListReplies(ctx context.Context, parentID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.CommentResponse], error)
	Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error)
}

type service struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	rankSvc     rank.Service
	redis       *redis.Client
}

func NewService(commentRepo repository.CommentRepository, voteRepo repository.VoteRepository, userRepo repository.UserRepository, postRepo repository.PostRepository, rankSvc rank.Service, redis *redis.Client) Service {
	return &service{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		rankSvc:     rankSvc,
		redis:       redis,
	}
}

func validateContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length == 0 || length > maxContentLength {
		return fmt.Errorf("%w: content must be between 1 and %d characters", domain.ErrValidation, maxContentLength)
	}
	return nil
}

func (s *service) Submit(ctx context.Context, postID uuid.UUID, author *domain.User, input domain.CreateCommentInput, ipAddress string) (*domain.CommentResponse, error) {
	if err := validateContent(input.Content); err != nil {
		return nil, err
	}

	exists, err := s.postRepo.Exists(ctx, postID, true)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	// Friendly pre-check; the repository re-validates the parent under a row
	// lock inside the insert transaction, which is what actually enforces
	// the depth cap under concurrency.
	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != postID || !parent.IsApproved {
			return nil, domain.ErrParentNotFound
		}
		if parent.ParentID != nil {
			return nil, domain.ErrDepthExceeded
		}
	}

	comment := &domain.Comment{
		ID:         uuid.New(),
		PostID:     postID,
		UserID:     &author.ID,
		ParentID:   input.ParentID,
		Content:    input.Content,
		IsApproved: true,
		IPAddress:  ipAddress,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementTotalComments(ctx, author.ID); err != nil {
		log.Printf("failed to bump comment counter for user %s: %v", author.ID, err)
	} else if _, err := s.rankSvc.Evaluate(ctx, author.ID); err != nil {
		log.Printf("rank evaluation failed for user %s: %v", author.ID, err)
	}

	s.invalidatePostCache(ctx, postID)

	return s.enrichOne(ctx, comment, &author.ID)
}

func (s *service) Edit(ctx context.Context, commentID, editorID uuid.UUID, input domain.UpdateCommentInput) (*domain.CommentResponse, error) {
	if err := validateContent(input.Content); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if comment.UserID == nil || *comment.UserID != editorID {
		return nil, domain.ErrForbidden
	}
	if !domain.WithinEditWindow(comment.CreatedAt, time.Now()) {
		return nil, domain.ErrEditWindowExpired
	}

	comment.Content = input.Content
	if err := s.commentRepo.UpdateContent(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidatePostCache(ctx, comment.PostID)

	return s.enrichOne(ctx, comment, &editorID)
}

func (s *service) SoftDelete(ctx context.Context, commentID, requesterID uuid.UUID, requesterIsAdmin bool) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.ErrCommentNotFound
	}

	isAuthor := comment.UserID != nil && *comment.UserID == requesterID
	if !isAuthor && !requesterIsAdmin {
		return domain.ErrForbidden
	}

	if err := s.commentRepo.SoftDelete(ctx, commentID); err != nil {
		return err
	}

	s.invalidatePostCache(ctx, comment.PostID)
	return nil
}

func (s *service) ListTopLevel(ctx context.Context, postID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams, sort domain.CommentSort, order domain.SortOrder, includeReplies bool) (domain.PaginatedResponse[domain.CommentResponse], error) {
	params.Validate()

	exists, err := s.postRepo.Exists(ctx, postID, false)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}
	if !exists {
		return domain.PaginatedResponse[domain.CommentResponse]{}, domain.ErrPostNotFound
	}

	// Pages rendered for anonymous viewers carry no viewer-specific state,
	// so only those are cached.
	cacheKey := fmt.Sprintf("comments:%s:page:%d:size:%d:sort:%s:%s:replies:%t",
		postID, params.Page, params.PageSize, sort, order, includeReplies)

	if viewerID == nil && s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result domain.PaginatedResponse[domain.CommentResponse]
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	comments, total, err := s.commentRepo.ListTopLevel(ctx, postID, params, sort, order)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}

	responses, err := s.enrich(ctx, comments, viewerID, includeReplies)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}

	result := domain.NewPaginatedResponse(responses, params.Page, params.PageSize, total)

	if viewerID == nil && s.redis != nil {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, 5*time.Minute).Err()
		}
	}

	return result, nil
}

// ListReplies returns the approved children of a comment oldest first. The
// parent only has to exist: a deleted parent keeps its replies readable, the
// placeholder masks nothing but its own content.
func (s *service) ListReplies(ctx context.Context, parentID uuid.UUID, viewerID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.CommentResponse], error) {
	params.Validate()

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}
	if parent == nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, domain.ErrCommentNotFound
	}

	replies, total, err := s.commentRepo.ListReplies(ctx, parentID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}

	responses, err := s.enrich(ctx, replies, viewerID, false)
	if err != nil {
		return domain.PaginatedResponse[domain.CommentResponse]{}, err
	}

	return domain.NewPaginatedResponse(responses, params.Page, params.PageSize, total), nil
}

func (s *service) Stats(ctx context.Context, postID uuid.UUID) (*domain.CommentStats, error) {
	exists, err := s.postRepo.Exists(ctx, postID, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPostNotFound
	}

	cacheKey := fmt.Sprintf("comments:%s:stats", postID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats domain.CommentStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.commentRepo.Stats(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}

func (s *service) invalidatePostCache(ctx context.Context, postID uuid.UUID) {
	if s.redis == nil {
		return
	}
	cachePattern := fmt.Sprintf("comments:%s:*", postID)
	keys, _ := s.redis.Keys(ctx, cachePattern).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func (s *service) enrichOne(ctx context.Context, comment *domain.Comment, viewerID *uuid.UUID) (*domain.CommentResponse, error) {
	responses, err := s.enrich(ctx, []domain.Comment{*comment}, viewerID, false)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// enrich assembles the visible representation for a batch of comments:
// author blocks with role/rank badges, vote tallies, the viewer's own vote,
// reply counts, and (optionally) approved replies one level deep.
func (s *service) enrich(ctx context.Context, comments []domain.Comment, viewerID *uuid.UUID, includeReplies bool) ([]domain.CommentResponse, error) {
	ids := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	var repliesByParent map[uuid.UUID][]domain.Comment
	allIDs := ids
	if includeReplies {
		var err error
		repliesByParent, err = s.commentRepo.ApprovedRepliesFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, replies := range repliesByParent {
			for _, reply := range replies {
				allIDs = append(allIDs, reply.ID)
			}
		}
	}

	tallies, err := s.voteRepo.TallyFor(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	viewerVotes := make(map[uuid.UUID]bool)
	if viewerID != nil {
		viewerVotes, err = s.voteRepo.ViewerVotes(ctx, allIDs, *viewerID)
		if err != nil {
			return nil, err
		}
	}

	replyCounts, err := s.commentRepo.ReplyCounts(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	authors := make(map[uuid.UUID]*domain.User)

	build := func(c domain.Comment) (domain.CommentResponse, error) {
		author := domain.RemovedAuthor()
		if c.UserID != nil {
			user, ok := authors[*c.UserID]
			if !ok {
				user, err = s.userRepo.GetByID(ctx, *c.UserID)
				if err != nil {
					return domain.CommentResponse{}, err
				}
				authors[*c.UserID] = user
			}
			if user != nil {
				author = domain.KnownAuthor(user)
			}
		}

		content := c.Content
		if c.IsDeleted {
			content = domain.DeletedContentPlaceholder
		}

		resp := domain.CommentResponse{
			ID:            c.ID,
			PostID:        c.PostID,
			ParentID:      c.ParentID,
			Content:       content,
			IsApproved:    c.IsApproved,
			IsDeleted:     c.IsDeleted,
			Author:        author,
			CreatedAt:     c.CreatedAt,
			UpdatedAt:     c.UpdatedAt,
			LikesCount:    tallies[c.ID].Likes,
			DislikesCount: tallies[c.ID].Dislikes,
			RepliesCount:  replyCounts[c.ID],
		}
		if vote, ok := viewerVotes[c.ID]; ok {
			v := vote
			resp.ViewerVote = &v
		}
		return resp, nil
	}

	responses := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp, err := build(c)
		if err != nil {
			return nil, err
		}
		if includeReplies {
			for _, reply := range repliesByParent[c.ID] {
				replyResp, err := build(reply)
				if err != nil {
					return nil, err
				}
				resp.Replies = append(resp.Replies, replyResp)
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
