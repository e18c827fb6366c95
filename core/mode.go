package core

import "sync"

// Mode tells whether data access is served from fixtures (mock mode) or from the upstream API (live mode).
type Mode struct {
	mu   sync.RWMutex
	mock bool
}

func NewMode(mock bool) *Mode {
	return &Mode{mock: mock}
}

// Toggle enables or disables mock mode and returns the new value.
func (m *Mode) Toggle(enable bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mock = enable
	return m.mock
}

func (m *Mode) IsMock() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mock
}

func (m *Mode) String() string {
	if m.IsMock() {
		return "mock"
	}
	return "live"
}
