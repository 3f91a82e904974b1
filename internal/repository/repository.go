package repository

import "gorm.io/gorm"

// Repository aggregates all repositories.
type Repository struct {
	Blob  BlobRepository
	State StateRepository
}

// NewRepository creates the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	blobs := NewBlobRepo(db)
	return &Repository{
		Blob:  blobs,
		State: NewStateRepo(blobs),
	}
}
