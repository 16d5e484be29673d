package testutil

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// Suite provides a context, a temp directory and a test logger to suites
// that run workloads or read and write config files.
type Suite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	tempDir string
	logger  *zap.Logger
}

// SetupTest runs before each test in the suite
func (s *Suite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), time.Minute)
	s.tempDir = s.T().TempDir()
	s.logger = TestLogger(s.T())
}

// TearDownTest runs after each test in the suite
func (s *Suite) TearDownTest() {
	s.cancel()
}

// Context returns the test context
func (s *Suite) Context() context.Context {
	return s.ctx
}

// TempDir returns the temporary directory path
func (s *Suite) TempDir() string {
	return s.tempDir
}

// Logger returns a logger bound to the current test
func (s *Suite) Logger() *zap.Logger {
	return s.logger
}

// CreateTempFile creates a file with content in the temp directory
func (s *Suite) CreateTempFile(name string, content []byte) string {
	path := filepath.Join(s.tempDir, name)
	err := os.WriteFile(path, content, 0o600)
	require.NoError(s.T(), err)
	return path
}
