package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/raceday-ai/racerd/internal/agent"
	"github.com/raceday-ai/racerd/internal/contextstore"
	"github.com/raceday-ai/racerd/internal/racerd"
	"github.com/raceday-ai/racerd/internal/templates"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry, err := templates.LoadRegistry("")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	svc := agent.NewService(registry, contextstore.New())
	router := racerd.NewRouter(racerd.NewHandler(svc, registry), zerolog.Nop(), nil)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateAgainstServer(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	resp, err := c.Generate(context.Background(), "race_strategy", map[string]any{
		"track": "Silverstone",
		"tires": "mediums",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("Status = %q", resp.Status)
	}

	var data struct {
		PostText string `json:"post_text"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if !strings.Contains(data.PostText, "Silverstone") {
		t.Fatalf("post = %q", data.PostText)
	}
}

func TestGenerateErrorSurfacesMessage(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	resp, err := c.Generate(context.Background(), "race_strategy", nil)
	if err == nil {
		t.Fatal("Generate with missing fields did not error")
	}
	if resp == nil || resp.Status != "error" {
		t.Fatalf("resp = %+v", resp)
	}
	if !strings.Contains(err.Error(), "track") || !strings.Contains(err.Error(), "tires") {
		t.Fatalf("error %q does not list missing fields", err)
	}
}

func TestContextRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	if _, err := c.UpdateContext(context.Background(), map[string]any{"team": "Alpine"}); err != nil {
		t.Fatalf("UpdateContext: %v", err)
	}

	resp, err := c.GetContext(context.Background())
	if err != nil {
		t.Fatalf("GetContext: %v", err)
	}
	var stored map[string]any
	if err := json.Unmarshal(resp.Data, &stored); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if stored["team"] != "Alpine" {
		t.Fatalf("context = %v", stored)
	}
}

func TestSimulateLike(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	resp, err := c.SimulateLike(context.Background(), "post-7", "")
	if err != nil {
		t.Fatalf("SimulateLike: %v", err)
	}
	if !strings.Contains(resp.Message, "post-7") {
		t.Fatalf("Message = %q", resp.Message)
	}
}

func TestEmptyBaseURL(t *testing.T) {
	c := New("")
	if _, err := c.GetContext(context.Background()); err == nil {
		t.Fatal("empty base URL did not error")
	}
}
