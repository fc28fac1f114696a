package repository

import (
	"context"

	"github.com/harsha/nutrition-dashboard/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Repositories struct {
	User UserRepository
}
