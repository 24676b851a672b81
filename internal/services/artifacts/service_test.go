package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/limes/internal/common"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	config := common.DefaultConfig()
	config.Artifacts.Dir = t.TempDir()
	return NewService(config, arbor.NewLogger())
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name   string
		system string
		ext    string
		want   string
	}{
		{"spaces", "My Payment System", "png", "My_Payment_System_threatmodel_20260828_143005.png"},
		{"punctuation stripped", "Shop: v2.0!", "dot", "Shop_v20_threatmodel_20260828_143005.dot"},
		{"empty falls back", "", "py", "threat_model_threatmodel_20260828_143005.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.system, tt.ext, at))
		})
	}
}

func TestSaveWritesFile(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	}

	path, err := svc.Save("Web Shop", "dot", []byte("digraph {}"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "Web_Shop_threatmodel_20260828_090000.dot", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}", string(data))
}

func TestSaveCreatesDirectory(t *testing.T) {
	svc := newTestService(t)
	svc.dir = filepath.Join(t.TempDir(), "nested", "diagrams")

	path, err := svc.Save("Shop", "py", []byte("print()"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSaveReportsWriteFailure(t *testing.T) {
	svc := newTestService(t)

	// A file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	svc.dir = blocker

	_, err := svc.Save("Shop", "dot", []byte("digraph {}"))
	assert.Error(t, err)
}
