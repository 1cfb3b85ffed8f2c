package token

import (
	"context"
	"sync"
)

// MemoryRepository keeps the token in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	token string
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// GetToken implements Repository.GetToken.
func (r *MemoryRepository) GetToken(context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.token, r.token != "", nil
}

// StoreToken implements Repository.StoreToken.
func (r *MemoryRepository) StoreToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.token = token

	return nil
}

// ClearToken implements Repository.ClearToken.
func (r *MemoryRepository) ClearToken(context.Context) error {
	return r.StoreToken(context.Background(), "")
}

// Close implements Repository.Close.
func (r *MemoryRepository) Close() error {
	return nil
}
