package service

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"legal-drafting-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedAdminService(t *testing.T, entries int) IAdminService {
	t.Helper()
	l := logger.NewZapLogger(filepath.Join(t.TempDir(), "app.log"), true)
	for i := 0; i < entries; i++ {
		l.Info("DRAFT", fmt.Sprintf("entry %d", i), nil)
	}
	return NewAdminService(l)
}

func TestGetSystemLogsPaging(t *testing.T) {
	svc := newLoggedAdminService(t, 6)
	ctx := context.Background()

	first, err := svc.GetSystemLogs(ctx, 1, 4, "info")
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.Equal(t, "entry 5", first[0].Message)

	second, err := svc.GetSystemLogs(ctx, 2, 4, "")
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "entry 1", second[0].Message)

	past, err := svc.GetSystemLogs(ctx, 3, 4, "")
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestGetSystemLogsHugePage(t *testing.T) {
	svc := newLoggedAdminService(t, 3)

	for _, page := range []int{1 << 62, math.MaxInt, math.MaxInt/4 + 2} {
		var res interface{}
		assert.NotPanics(t, func() {
			logs, err := svc.GetSystemLogs(context.Background(), page, 4, "")
			require.NoError(t, err)
			res = logs
		}, page)
		assert.Empty(t, res, page)
	}
}
