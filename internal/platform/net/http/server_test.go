package http

import (
	"context"
	stdhttp "net/http"
	"testing"
	"time"

	"polesplit/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_DefaultAddrAndMountOpts(t *testing.T) {
	var mounted bool
	s := NewServer(config.New(), func(m *chi.Mux) {
		mounted = true
		m.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusOK)
		})
	})
	if !mounted {
		t.Fatalf("mount option not invoked")
	}
	if s.Addr() != ":4000" {
		t.Fatalf("default addr = %q", s.Addr())
	}
	if s.Router() == nil {
		t.Fatalf("router should not be nil")
	}
}

func TestNewServer_AddrFromEnv(t *testing.T) {
	t.Setenv("API_PORT", ":8088")
	s := NewServer(config.New())
	if s.Addr() != ":8088" {
		t.Fatalf("addr = %q", s.Addr())
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	s := NewServer(config.New())

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	// give the listener a beat, then stop it
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not return after shutdown")
	}
}
