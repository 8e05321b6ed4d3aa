package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/multitool_api/internal/models"
)

type recordingStore struct {
	deleted   bool
	batches   []int
	deleteErr error
	insertErr error
}

func (s *recordingStore) DeleteAll(context.Context) (int64, error) {
	s.deleted = true
	return 3, s.deleteErr
}

func (s *recordingStore) CreateBatch(_ context.Context, products []models.Product) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.batches = append(s.batches, len(products))
	return nil
}

func TestRun(t *testing.T) {
	store := &recordingStore{}
	require.NoError(t, Run(context.Background(), store, NewGenerator(1), 1200))

	assert.True(t, store.deleted)
	assert.Equal(t, []int{500, 500, 200}, store.batches)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	assert.Error(t, Run(ctx, &recordingStore{}, NewGenerator(1), -1))

	store := &recordingStore{deleteErr: errors.New("locked")}
	assert.EqualError(t, Run(ctx, store, NewGenerator(1), 10), "locked")
	assert.Empty(t, store.batches)

	store = &recordingStore{insertErr: errors.New("constraint")}
	err := Run(ctx, store, NewGenerator(1), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 0-10")
}

func TestRun_Empty(t *testing.T) {
	store := &recordingStore{}
	require.NoError(t, Run(context.Background(), store, NewGenerator(1), 0))
	assert.True(t, store.deleted)
	assert.Empty(t, store.batches)
}
