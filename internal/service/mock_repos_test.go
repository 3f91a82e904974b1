package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DeValentRT/Horario-Prototipo/internal/repository"
)

// ── Mock BlobRepository ──
//
// The state repository is the real one, layered over this in-memory blob
// store, so service tests also exercise the load/save round trip.

type mockBlobRepo struct {
	blobs    map[string][]byte
	putCount int
	failPuts bool
}

func newMockBlobRepo() *mockBlobRepo {
	return &mockBlobRepo{blobs: make(map[string][]byte)}
}

func (m *mockBlobRepo) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := m.blobs[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *mockBlobRepo) Put(_ context.Context, key string, data []byte) error {
	m.putCount++
	if m.failPuts {
		return errors.New("storage quota exceeded")
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blobs[key] = cp
	return nil
}

func newTestRepository(blobs *mockBlobRepo) *repository.Repository {
	return &repository.Repository{
		Blob:  blobs,
		State: repository.NewStateRepo(blobs),
	}
}
