package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "polesplit/internal/platform/net/http"

	"polesplit/internal/core/pipeline"
	procdom "polesplit/internal/services/process/domain"
)

type fakeRunner struct {
	gotRows []pipeline.Row
	gotOpts procdom.FileOptions
}

func (f *fakeRunner) ProcessFile(context.Context, string, string, procdom.FileOptions) (procdom.FileResult, error) {
	panic("not used")
}

func (f *fakeRunner) ProcessRows(_ context.Context, rows []pipeline.Row, opts procdom.FileOptions) (procdom.RowsResult, error) {
	f.gotRows = rows
	f.gotOpts = opts
	return procdom.RowsResult{
		Rows:   []pipeline.ResultRow{{ID: "1", Raw: rows[0].Raw}},
		Report: pipeline.Report{InputRows: len(rows), OutputRows: 1},
	}, nil
}

func newServer(t *testing.T, runner procdom.RunnerPort) *httptest.Server {
	t.Helper()
	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), runner)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRowsEndpoint(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	srv := newServer(t, runner)

	body := `{"rows":[{"id":"1","raw":"POLE TRANSFER 0506113 - 07613020"},{"id":"2","raw":"x"}],"no_dedupe":true}`
	res, err := http.Post(srv.URL+"/rows", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var env struct {
		Data procdom.RowsResult `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Report.InputRows != 2 || len(env.Data.Rows) != 1 {
		t.Fatalf("data = %+v", env.Data)
	}
	if len(runner.gotRows) != 2 || !runner.gotOpts.NoDedupe {
		t.Fatalf("runner saw rows=%v opts=%+v", runner.gotRows, runner.gotOpts)
	}
}

func TestRowsEndpointValidation(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &fakeRunner{})

	res, err := http.Post(srv.URL+"/rows", "application/json", strings.NewReader(`{"rows":[]}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestSplitEndpoint(t *testing.T) {
	t.Parallel()

	srv := newServer(t, &fakeRunner{})

	res, err := http.Post(srv.URL+"/split", "application/json",
		strings.NewReader(`{"raw":"JAYSON POLE TRANSFER 3414407 - 7325119"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var env struct {
		Data struct {
			MarkerName   string `json:"marker_name"`
			EngineNumber string `json:"engine_number"`
			PoleNumber   string `json:"pole_number"`
			Parsed       bool   `json:"parsed"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.MarkerName != "JAYSON POLE TRANSFER" || env.Data.EngineNumber != "3414407" ||
		env.Data.PoleNumber != "7325119" || !env.Data.Parsed {
		t.Fatalf("data = %+v", env.Data)
	}
}
