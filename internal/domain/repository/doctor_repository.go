package repository

import (
	"context"

	"healthhub-directory/internal/domain/entity"
)

// DoctorRepository holds the directory snapshot loaded from the feed.
type DoctorRepository interface {
	ReplaceAll(ctx context.Context, doctors []entity.Doctor) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Specialties(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)
}
