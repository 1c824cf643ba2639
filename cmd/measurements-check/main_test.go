package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOONICheck_PrintsSample(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/measurements" || r.URL.Query().Get("limit") != "1" {
			t.Errorf("unexpected request %s", r.URL)
		}
		_, _ = w.Write([]byte(`{"metadata":{"count":42},"results":[{"test_name":"web_connectivity","probe_cc":"IT"}]}`))
	}))
	defer srv.Close()

	out, err := runCheck(t, "ooni", "--base-url", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"42 measurements available", "test_name=web_connectivity probe_cc=IT"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestOONICheck_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := runCheck(t, "ooni", "--base-url", srv.URL)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected 502 error, got %v", err)
	}
}

func TestRoot_RejectsUnknownSubcommand(t *testing.T) {
	if _, err := runCheck(t, "nope"); err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}
