package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/command-engine/internal/adapters/http"
	"github.com/jsamuelsen11/command-engine/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func localConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

// startServer listens on an ephemeral port and serves in the background.
func startServer(t *testing.T, handler http.Handler) (*adapthttp.Server, <-chan error) {
	t.Helper()

	s := adapthttp.NewServer(localConfig(), handler, discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	return s, errCh
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	if s := adapthttp.NewServer(localConfig(), http.NotFoundHandler(), nil); s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_AddrBeforeAndAfterListen(t *testing.T) {
	t.Parallel()

	idle := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler(), discardLogger())
	if got := idle.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() before Listen = %q, want 127.0.0.1:9090", got)
	}

	s, errCh := startServer(t, http.NotFoundHandler())
	if got := s.Addr(); got == "127.0.0.1:0" || !strings.HasPrefix(got, "127.0.0.1:") {
		t.Errorf("Addr() after Listen = %q, want the bound port", got)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	<-errCh
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	s, errCh := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))

	resp, err := http.Get("http://" + s.Addr() + "/health/live")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownWaitsForInFlightRequest(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	finish := make(chan struct{})
	s, errCh := startServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-finish
		_, _ = io.WriteString(w, "applied")
	}))

	got := make(chan string, 1)
	go func() {
		resp, err := http.Post("http://"+s.Addr()+"/api/v1/commands", "application/json", strings.NewReader("{}"))
		if err != nil {
			got <- "error: " + err.Error()
			return
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		got <- string(b)
	}()
	<-started

	shutdownDone := make(chan error, 1)
	go func() { shutdownDone <- s.Shutdown(context.Background()) }()

	select {
	case err := <-shutdownDone:
		t.Fatalf("Shutdown() returned %v before the request finished", err)
	case <-time.After(20 * time.Millisecond):
	}

	close(finish)
	if body := <-got; body != "applied" {
		t.Errorf("in-flight response = %q, want applied", body)
	}
	if err := <-shutdownDone; err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Errorf("Start() error = %v", err)
	}
}
