package domain

import "errors"

// Error taxonomy surfaced by the services. All of these are terminal for the
// current request; the middleware translates them into stable response codes.
var (
	ErrPostNotFound      = errors.New("post not found or not published")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrParentNotFound    = errors.New("parent comment not found")
	ErrRankNotFound      = errors.New("rank not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("insufficient permissions")
	ErrDepthExceeded     = errors.New("replies to replies are not allowed")
	ErrEditWindowExpired = errors.New("comment edit window has expired")
	ErrUnauthorized      = errors.New("authentication required")
	ErrValidation        = errors.New("invalid input")
)
