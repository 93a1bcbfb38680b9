package search

import (
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

// Score provides a mock function with given fields: name, kw.
func (_m *MockProvider) Score(name string, kw Keywords) int {
	ret := _m.Called(name, kw)

	var r0 int
	if rf, ok := ret.Get(0).(func(string, Keywords) int); ok {
		r0 = rf(name, kw)
	} else {
		r0 = ret.Int(0)
	}

	return r0
}

// Name provides a mock function with given fields: .
func (_m *MockProvider) Name() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}
