package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestSSHServerShutdownClosesStoreAfterDrain(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "snake.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("server opened without a store")
	}

	rec := storage.NewHistoryRecord("classic", 10, 4, 12, 2, time.Now())
	if err := srv.store.AppendHistory(rec); err != nil {
		t.Fatalf("AppendHistory before shutdown: %v", err)
	}

	// A session finishing its match while the server drains.
	var drainErr error
	shutdown := srv.drain
	srv.drain = func(ctx context.Context) error {
		drainErr = srv.store.AppendHistory(rec)
		return shutdown(ctx)
	}

	if err := srv.Shutdown(); err != nil {
		t.Logf("Shutdown: %v", err)
	}
	if drainErr != nil {
		t.Errorf("history written during drain failed: %v", drainErr)
	}
	if err := srv.store.AppendHistory(rec); err == nil {
		t.Error("store still open after Shutdown")
	}
}
