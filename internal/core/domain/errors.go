package domain

import "errors"

// Authentication and token errors.
var (
	// ErrInvalidCredentials deliberately covers both "unknown username" and
	// "wrong password" so login responses cannot be used for user enumeration.
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUnauthenticated     = errors.New("authentication required")
)

// Authorization errors.
var (
	ErrNotOwner  = errors.New("only the author may modify this record")
	ErrAdminOnly = errors.New("administrator role required")
)

// Uniqueness conflicts. Raised by the services on check-then-act and by the
// repositories when the store's unique index catches a concurrent write.
var (
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrEmailTaken     = errors.New("email is already in use")
	ErrAnswerExists   = errors.New("question already has an answer")
	ErrReviewExists   = errors.New("review already exists for this product")
	ErrWishlistExists = errors.New("product is already in the wishlist")
)

// Not-found errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrWishlistNotFound = errors.New("product is not in the wishlist")
)

// Validation errors.
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
