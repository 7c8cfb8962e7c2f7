package requeststore

import (
	"context"
	"sync"

	"github.com/paiban/erroster/pkg/model"
)

type monthKey struct {
	year, month int
}

// MemoryStore is an in-process Store, useful for tests and single-process
// deployments that don't need durability across restarts.
type MemoryStore struct {
	mu         sync.RWMutex
	requests   map[monthKey][]model.Request
	fixes      map[monthKey][]model.FixRequest
	overrides  map[monthKey][]model.StaffingOverride
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests:  make(map[monthKey][]model.Request),
		fixes:     make(map[monthKey][]model.FixRequest),
		overrides: make(map[monthKey][]model.StaffingOverride),
	}
}

func (s *MemoryStore) SaveRequest(_ context.Context, req model.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := monthKey{req.Year, req.Month}
	s.requests[k] = append(s.requests[k], req)
	return nil
}

func (s *MemoryStore) SaveFixRequest(_ context.Context, fr model.FixRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := monthKey{fr.Year, fr.Month}
	s.fixes[k] = append(s.fixes[k], fr)
	return nil
}

func (s *MemoryStore) SaveOverride(_ context.Context, o model.StaffingOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := monthKey{o.Year, o.Month}
	s.overrides[k] = append(s.overrides[k], o)
	return nil
}

func (s *MemoryStore) ListRequests(_ context.Context, year, month int) ([]model.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Request(nil), s.requests[monthKey{year, month}]...), nil
}

func (s *MemoryStore) ListFixRequests(_ context.Context, year, month int) ([]model.FixRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.FixRequest(nil), s.fixes[monthKey{year, month}]...), nil
}

func (s *MemoryStore) ListOverrides(_ context.Context, year, month int) ([]model.StaffingOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StaffingOverride(nil), s.overrides[monthKey{year, month}]...), nil
}
