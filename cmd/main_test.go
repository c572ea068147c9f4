package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRootCmdRejectsReversedOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "range:\n  start_timestamp: 1657152000\n  end_timestamp: 1657756800\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--end", "1000"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "end_timestamp") {
		t.Fatalf("expected range validation error, got %v", err)
	}
}

func TestRootCmdMissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestMetricsServerServesAndReportsShutdownError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := serveMetrics(ln, prometheus.NewRegistry())

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("get metrics: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status = %d", resp.StatusCode)
	}

	// A half-sent request keeps the connection active, so shutdown cannot finish in time.
	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte("GET /metrics HTTP/1.1\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	stopMetrics(ctx, srv, log.New(&buf, "", 0))
	if !strings.Contains(buf.String(), "[Metrics] shutdown: context canceled") {
		t.Fatalf("expected shutdown error to be logged, got %q", buf.String())
	}
	srv.Close()
}
