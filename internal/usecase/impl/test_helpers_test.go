package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// newTestLogger creates a logger that discards output for tests
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireAppErrorCode asserts that err carries the given business error code
func requireAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}
