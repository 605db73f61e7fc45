package sessionserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-mc47/protocol/sessionserver"
)

func TestJoinSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/session/minecraft/join" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := sessionserver.NewClientWithURL(srv.URL)
	err := c.Join(context.Background(), "a-believable-access-token", "069a79f444e94726a5befca90e38aaf5", "deadbeef")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
}

func TestJoinFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"ForbiddenOperationException","errorMessage":"Invalid session"}`))
	}))
	defer srv.Close()

	c := sessionserver.NewClientWithURL(srv.URL)
	err := c.Join(context.Background(), "a-believable-access-token", "069a79f444e94726a5befca90e38aaf5", "deadbeef")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestComputeServerHashKnownVector(t *testing.T) {
	// With an empty secret and key the hash is the Minecraft SHA-1 of the
	// server ID alone, so the well-known "Notch" vector applies.
	if got, want := sessionserver.ComputeServerHash("Notch", nil, nil), "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48"; got != want {
		t.Fatalf("ComputeServerHash(\"Notch\") = %q, want %q", got, want)
	}
	h1 := sessionserver.ComputeServerHash("", []byte("secret"), []byte("key"))
	h2 := sessionserver.ComputeServerHash("", []byte("secret"), []byte("key"))
	if h1 != h2 {
		t.Fatalf("expected deterministic hash, got %q vs %q", h1, h2)
	}
}
