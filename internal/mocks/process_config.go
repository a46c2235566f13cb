package mocks

import "github.com/stretchr/testify/mock"

type ProcessConfig struct {
	mock.Mock
}

func (m *ProcessConfig) Get(key string) (any, bool) {
	args := m.Called(key)
	return args.Get(0), args.Bool(1)
}
