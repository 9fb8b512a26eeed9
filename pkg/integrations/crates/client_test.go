package crates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	liberrors "github.com/matzehuels/libyear/pkg/errors"
	"github.com/matzehuels/libyear/pkg/integrations"
)

func TestNewClient(t *testing.T) {
	c := NewClient("", "libyear-test")
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}

	c = NewClient("http://localhost:8080/api/v1/", "libyear-test")
	if c.BaseURL() != "http://localhost:8080/api/v1" {
		t.Errorf("BaseURL() = %q, trailing slash should be trimmed", c.BaseURL())
	}
}

func TestClient_FetchVersions(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/crates/serde" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotUA = r.Header.Get("User-Agent")
		resp := crateResponse{}
		resp.Crate.Name = "serde"
		resp.Versions = []versionResponse{
			{Num: "1.0.228", CreatedAt: "2025-09-27T16:51:35.123456+00:00"},
			{Num: "1.0.193", CreatedAt: "2023-11-20T23:05:04Z"},
			{Num: "0.9.0", CreatedAt: "2017-01-25T18:34:09Z", Yanked: true},
			{Num: "0.0.1", CreatedAt: "not a date"},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := testClient(server)
	versions, err := c.FetchVersions(context.Background(), "serde")
	if err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}

	if gotUA != "libyear-test" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "libyear-test")
	}
	if len(versions) != 3 {
		t.Fatalf("got %d versions, want 3 (unparsable date dropped)", len(versions))
	}
	if versions[0].Num != "1.0.228" {
		t.Errorf("versions[0].Num = %q, want 1.0.228", versions[0].Num)
	}
	want := time.Date(2025, 9, 27, 16, 51, 35, 123456000, time.UTC)
	if !versions[0].CreatedAt.Equal(want) {
		t.Errorf("versions[0].CreatedAt = %v, want %v", versions[0].CreatedAt, want)
	}
	if versions[0].CreatedAt.Location() != time.UTC {
		t.Error("CreatedAt should be normalized to UTC")
	}
	if !versions[2].Yanked {
		t.Error("versions[2] should be yanked")
	}
}

func TestClient_FetchVersions_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server).FetchVersions(context.Background(), "nonexistent")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestClient_FetchVersions_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server).FetchVersions(context.Background(), "serde")
	if !errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestClient_FetchVersions_InvalidName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s", r.URL.Path)
	}))
	defer server.Close()

	_, err := testClient(server).FetchVersions(context.Background(), "../../me")
	if !liberrors.Is(err, liberrors.ErrCodeInvalidPackage) {
		t.Errorf("error = %v, want INVALID_PACKAGE", err)
	}
}

func TestClient_FetchVersions_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crate":{"name":"ghost"},"versions":[]}`))
	}))
	defer server.Close()

	versions, err := testClient(server).FetchVersions(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("FetchVersions failed: %v", err)
	}
	if len(versions) != 0 {
		t.Errorf("got %d versions, want 0", len(versions))
	}
}

func testClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "libyear-test",
		integrations.WithHTTPClient(server.Client()),
		integrations.WithMinInterval(0),
	)
}
