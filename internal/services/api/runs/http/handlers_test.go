package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	perr "polesplit/internal/platform/errors"
	phttp "polesplit/internal/platform/net/http"

	runsdom "polesplit/internal/services/runs/domain"
)

type fakeReader struct {
	runs    []runsdom.Run
	lastIn  runsdom.ListInput
	gotID   string
	getErr  error
	listErr error
}

func (f *fakeReader) Recent(_ context.Context, in runsdom.ListInput) ([]runsdom.Run, error) {
	f.lastIn = in
	return f.runs, f.listErr
}

func (f *fakeReader) Get(_ context.Context, id string) (runsdom.Run, error) {
	f.gotID = id
	if f.getErr != nil {
		return runsdom.Run{}, f.getErr
	}
	for _, r := range f.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return runsdom.Run{}, perr.NotFoundf("run %s not found", id)
}

func newServer(t *testing.T, reader runsdom.ReaderPort) *httptest.Server {
	t.Helper()
	mux := chi.NewMux()
	phttp.AdaptChi(mux).Route("/runs", func(r phttp.Router) {
		Register(r, reader)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func sampleRun(id string) runsdom.Run {
	return runsdom.Run{
		ID:        id,
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Input:     "poles.xlsx",
		Output:    "processed.xlsx",
		Column:    "Raw_Marker_Data",
	}
}

func TestRecentEndpoint(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{runs: []runsdom.Run{
		sampleRun("11111111-1111-1111-1111-111111111111"),
		sampleRun("22222222-2222-2222-2222-222222222222"),
	}}
	srv := newServer(t, reader)

	res, err := http.Get(srv.URL + "/runs/?limit=5")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if reader.lastIn.Limit != 5 {
		t.Fatalf("limit = %d", reader.lastIn.Limit)
	}
	var env struct {
		Data []runsdom.Run `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 2 || env.Data[0].Input != "poles.xlsx" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestGetEndpoint(t *testing.T) {
	t.Parallel()

	id := "11111111-1111-1111-1111-111111111111"
	reader := &fakeReader{runs: []runsdom.Run{sampleRun(id)}}
	srv := newServer(t, reader)

	res, err := http.Get(srv.URL + "/runs/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if reader.gotID != id {
		t.Fatalf("id = %q", reader.gotID)
	}
}

func TestGetEndpointNotFound(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &fakeReader{})

	res, err := http.Get(srv.URL + "/runs/99999999-9999-9999-9999-999999999999")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", res.StatusCode)
	}
}
