//go:build !production

// Package testutil provides shared test doubles.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Reinaldo-Kn/pifatro/internal/game/session"
)

// MockSnapshotStore mocks the persistence collaborator.
type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) SaveState(ctx context.Context, userID string, snap session.Snapshot) error {
	args := m.Called(ctx, userID, snap)
	return args.Error(0)
}

func (m *MockSnapshotStore) LoadState(ctx context.Context, userID string) (*session.Snapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Snapshot), args.Error(1)
}
