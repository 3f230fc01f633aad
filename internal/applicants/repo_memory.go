package applicants

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for development and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Applicant
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the applicant in insertion order.
func (r *MemoryRepo) Create(ctx context.Context, applicant Applicant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, applicant)
	return nil
}

// ListAll returns a copy of every stored applicant.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]Applicant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Applicant, len(r.data))
	copy(out, r.data)
	return out, nil
}
