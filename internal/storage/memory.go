package storage

import (
	"context"
	"sync"

	"finhealth/internal/core"
)

type reportKey struct {
	owner     string
	periodKey uint64
}

// MemoryStore keeps engine state in process memory. It backs the memory
// data backend and tests; all state is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	admin     string
	hasAdmin  bool
	addresses core.ContractAddresses
	hasAddrs  bool
	reports   map[reportKey]core.FinancialHealthReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		reports: make(map[reportKey]core.FinancialHealthReport),
	}
}

func (s *MemoryStore) Admin(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasAdmin {
		return "", core.ErrNotInitialized
	}
	return s.admin, nil
}

func (s *MemoryStore) SetAdmin(_ context.Context, admin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
	s.hasAdmin = true
	return nil
}

func (s *MemoryStore) Addresses(context.Context) (core.ContractAddresses, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasAddrs {
		return core.ContractAddresses{}, core.ErrNotConfigured
	}
	return s.addresses, nil
}

func (s *MemoryStore) SetAddresses(_ context.Context, addrs core.ContractAddresses) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses = addrs
	s.hasAddrs = true
	return nil
}

func (s *MemoryStore) PutReport(_ context.Context, owner string, periodKey uint64, report core.FinancialHealthReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[reportKey{owner, periodKey}] = report
	return nil
}

func (s *MemoryStore) GetReport(_ context.Context, owner string, periodKey uint64) (core.FinancialHealthReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[reportKey{owner, periodKey}]
	if !ok {
		return core.FinancialHealthReport{}, core.ErrReportNotFound
	}
	return report, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
