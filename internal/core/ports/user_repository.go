package ports

import (
	"context"

	"github.com/viewmall/commerce-api/internal/core/domain"
)

// UserRepository persists identities. Username and email carry unique
// indexes at the store; Create surfaces collisions as domain.ErrUsernameTaken
// or domain.ErrEmailTaken so a concurrent duplicate signup cannot slip past
// the service-level pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
