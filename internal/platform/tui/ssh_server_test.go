package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSHServerExpandsHomeInHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: "~/.d20/host_key",
		IdleTimeout: time.Minute,
		Screen:      DefaultOptions(),
	}, log.New(io.Discard))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(home, ".d20", "host_key"))
	assert.NoDirExists(t, "~")
	assert.Zero(t, srv.ActiveSessions())
}
