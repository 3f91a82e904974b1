package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DeValentRT/Horario-Prototipo/internal/model"
	"github.com/DeValentRT/Horario-Prototipo/internal/planner"
)

// StateRepository is the single write-through point for planner state: it
// loads the persisted blobs into a State and saves a State back as three
// keyed blobs. Every mutating service operation ends with exactly one Save.
type StateRepository interface {
	Load(ctx context.Context) (*planner.State, error)
	Save(ctx context.Context, state *planner.State) error
}

type stateRepo struct {
	blobs BlobRepository
}

// NewStateRepo creates a StateRepository over a BlobRepository.
func NewStateRepo(blobs BlobRepository) StateRepository {
	return &stateRepo{blobs: blobs}
}

// Load reads the persisted blobs. Missing blobs load as empty collections,
// matching a first run.
func (r *stateRepo) Load(ctx context.Context) (*planner.State, error) {
	state := planner.NewState()

	if err := r.loadBlob(ctx, model.BlobKeyCourses, &state.Courses); err != nil {
		return nil, err
	}
	if err := r.loadBlob(ctx, model.BlobKeyVisibility, &state.Visibility); err != nil {
		return nil, err
	}
	if state.Visibility == nil {
		state.Visibility = make(planner.Visibility)
	}
	if err := r.loadBlob(ctx, model.BlobKeySavedViews, &state.SavedViews); err != nil {
		return nil, err
	}

	return state, nil
}

func (r *stateRepo) loadBlob(ctx context.Context, key string, dst interface{}) error {
	data, err := r.blobs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load blob %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode blob %s: %w", key, err)
	}
	return nil
}

// Save writes the three source-of-truth blobs.
func (r *stateRepo) Save(ctx context.Context, state *planner.State) error {
	if err := r.saveBlob(ctx, model.BlobKeyCourses, state.Courses); err != nil {
		return err
	}
	if err := r.saveBlob(ctx, model.BlobKeyVisibility, state.Visibility); err != nil {
		return err
	}
	return r.saveBlob(ctx, model.BlobKeySavedViews, state.SavedViews)
}

func (r *stateRepo) saveBlob(ctx context.Context, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode blob %s: %w", key, err)
	}
	if err := r.blobs.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}
