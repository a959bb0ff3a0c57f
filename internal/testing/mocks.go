package testing

import (
	"context"
	"sync"

	"github.com/aristath/spreadbook/internal/domain"
)

// MockPositionsGateway is a mock implementation of domain.PositionsGateway for testing
type MockPositionsGateway struct {
	mu        sync.RWMutex
	positions []domain.RawPosition
	err       error
	calls     int
}

// NewMockPositionsGateway creates a new mock positions gateway
func NewMockPositionsGateway() *MockPositionsGateway {
	return &MockPositionsGateway{
		positions: make([]domain.RawPosition, 0),
	}
}

// SetPositions sets the positions to return
func (m *MockPositionsGateway) SetPositions(positions ...domain.RawPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = positions
}

// SetError sets the error to return
func (m *MockPositionsGateway) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times GetPositions was called
func (m *MockPositionsGateway) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// GetPositions returns the configured positions, or the context error once ctx is done
func (m *MockPositionsGateway) GetPositions(ctx context.Context) ([]domain.RawPosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, &domain.CancelledError{Err: err}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.positions, nil
}
