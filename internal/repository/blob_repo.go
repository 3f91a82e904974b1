package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DeValentRT/Horario-Prototipo/internal/model"
)

// BlobRepository reads and writes one keyed planner blob.
type BlobRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

type blobRepo struct {
	db *gorm.DB
}

// NewBlobRepo creates the gorm-backed BlobRepository.
func NewBlobRepo(db *gorm.DB) BlobRepository {
	return &blobRepo{db: db}
}

func (r *blobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var blob model.PlannerBlob
	err := r.db.WithContext(ctx).
		Where("blob_key = ?", key).
		First(&blob).Error
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (r *blobRepo) Put(ctx context.Context, key string, data []byte) error {
	blob := model.PlannerBlob{
		BlobKey: key,
		Data:    model.JSONText(data),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blob_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&blob).Error
}
