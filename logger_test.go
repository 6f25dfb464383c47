package lsys_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lsys"
)

func TestLogger_SilentByDefault(t *testing.T) {
	l := lsys.Logger()
	assert.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	lsys.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer lsys.SetLogger(nil)

	lsys.Logger().Info("expansion started", "depth", 3)
	assert.Contains(t, buf.String(), "expansion started")
	assert.Contains(t, buf.String(), "depth=3")

	// nil restores the silent default.
	lsys.SetLogger(nil)
	assert.False(t, lsys.Logger().Enabled(context.Background(), slog.LevelError))
}
