package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeRunner satisfies TxRunner plus the optional Pinger/Closer seams
type fakeRunner struct {
	pingErr  error
	closeErr error
	pinged   bool
	closed   bool
}

func (f *fakeRunner) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, nil }
func (f *fakeRunner) Query(context.Context, string, ...any) (Rows, error)      { return nil, nil }
func (f *fakeRunner) QueryRow(context.Context, string, ...any) Row             { return nil }
func (f *fakeRunner) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	return fn(f)
}
func (f *fakeRunner) Ping(context.Context) error { f.pinged = true; return f.pingErr }
func (f *fakeRunner) Close() error               { f.closed = true; return f.closeErr }

func TestOpen_PGDisabled_LeavesSeamNil(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s.PG != nil {
		t.Fatalf("unexpected PG seam %T", s.PG)
	}
	if e := s.Close(context.Background()); e != nil {
		t.Fatalf("Close on empty store: %v", e)
	}
}

func TestOpen_PGEnabled_BadURL_BubblesError(t *testing.T) {
	t.Parallel()

	cfg := Config{PG: PGConfig{Enabled: true, URL: "://bad"}}
	s, err := Open(context.Background(), cfg)
	if err == nil {
		t.Fatalf("expected Open error for bad PG URL, got store=%#v", s)
	}
	if s != nil {
		t.Fatalf("expected nil store on error, got %#v", s)
	}
}

func TestOpen_OptionsApplied(t *testing.T) {
	t.Parallel()

	var zl zerolog.Logger
	s, err := Open(context.Background(), Config{}, WithLogger(zl))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s == nil {
		t.Fatalf("Open returned nil store")
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatalf("nil store should fail guard")
	}

	f := &fakeRunner{}
	s := &Store{PG: f}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("healthy seam should pass: %v", err)
	}
	if !f.pinged {
		t.Fatalf("guard should ping the seam")
	}

	f.pingErr = errors.New("down")
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("expected guard failure")
	}
}

func TestClose_ClosesSeam(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{}
	s := &Store{PG: f}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !f.closed {
		t.Fatalf("seam not closed")
	}

	f2 := &fakeRunner{closeErr: errors.New("flush failed")}
	s2 := &Store{PG: f2}
	if err := s2.Close(context.Background()); err == nil {
		t.Fatalf("expected close error to surface")
	}
}
