package client

import (
	"context"
	"sync"

	"github.com/steamkit/gomarket/market/types"
)

// MockConfirmationService is an in-memory confirmation service for
// testing, with call tracking and one-shot error injection.
type MockConfirmationService struct {
	mu sync.Mutex

	// Response data
	Pending    []types.PendingConfirmation
	SellResult *types.SellItemResponse

	// Call tracking
	Calls    map[string]int
	Accepted []types.PendingConfirmation

	// Error injection
	ErrorOnNext map[string]error
}

func NewMockConfirmationService() *MockConfirmationService {
	return &MockConfirmationService{
		Calls:       make(map[string]int),
		ErrorOnNext: make(map[string]error),
		SellResult: &types.SellItemResponse{
			Success: types.ResultOK,
		},
	}
}

func (m *MockConfirmationService) trackCall(name string) error {
	m.Calls[name]++
	if err, ok := m.ErrorOnNext[name]; ok {
		delete(m.ErrorOnNext, name)
		return err
	}
	return nil
}

func (m *MockConfirmationService) ListPendingConfirmations(ctx context.Context) ([]types.PendingConfirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.trackCall("ListPendingConfirmations"); err != nil {
		return nil, err
	}
	out := make([]types.PendingConfirmation, len(m.Pending))
	copy(out, m.Pending)
	return out, nil
}

func (m *MockConfirmationService) Accept(ctx context.Context, confirmation types.PendingConfirmation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.trackCall("Accept"); err != nil {
		return err
	}
	m.Accepted = append(m.Accepted, confirmation)
	return nil
}

func (m *MockConfirmationService) ConfirmSellListing(ctx context.Context, assetID string) (*types.SellItemResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.trackCall("ConfirmSellListing"); err != nil {
		return nil, err
	}
	return m.SellResult, nil
}
