package process

import (
	"os/exec"

	"github.com/stretchr/testify/mock"
)

type mockPathProvider struct {
	mock.Mock
}

func (m *mockPathProvider) Exists(path string) (bool, error) {
	args := m.Called(path)

	return args.Bool(0), args.Error(1)
}

type mockCmdProvider struct {
	mock.Mock
}

func (m *mockCmdProvider) Run(cmd *exec.Cmd) error {
	return m.Called(cmd).Error(0)
}

func (m *mockCmdProvider) Start(cmd *exec.Cmd) error {
	return m.Called(cmd).Error(0)
}

func (m *mockCmdProvider) Wait(cmd *exec.Cmd) error {
	return m.Called(cmd).Error(0)
}
