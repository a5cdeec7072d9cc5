package search

import (
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock of Provider.
type MockProvider struct {
	mock.Mock
}

// Match returns the configured result. A func(domain.Mod, string) bool
// return value is called with the arguments.
func (m *MockProvider) Match(mod domain.Mod, query string) bool {
	ret := m.Called(mod, query)
	if fn, ok := ret.Get(0).(func(domain.Mod, string) bool); ok {
		return fn(mod, query)
	}
	return ret.Bool(0)
}

func (m *MockProvider) Name() string {
	ret := m.Called()
	return ret.String(0)
}
