// Package testutil holds helpers shared by package tests.
package testutil

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/dnaeon/go-vcr.v2/cassette"
	"gopkg.in/dnaeon/go-vcr.v2/recorder"
)

// ReplayClient returns a client that answers upstream calls from
// testdata/fixtures/<name>.yaml in the calling test's package directory.
// With VCR_MODE=record the real upstream is called and the cassette rewritten.
// The recorder is stopped when the test ends.
func ReplayClient(t *testing.T, name string) *http.Client {
	t.Helper()

	mode := recorder.ModeReplaying
	if os.Getenv("VCR_MODE") == "record" {
		mode = recorder.ModeRecording
	}

	rec, err := recorder.NewAsMode(cassettePath(name), mode, nil)
	if err != nil {
		t.Fatalf("cassette %s: %v", name, err)
	}
	rec.SetMatcher(matchUpstreamRequest)

	t.Cleanup(func() {
		if err := rec.Stop(); err != nil {
			t.Errorf("cassette %s: stop recorder: %v", name, err)
		}
	})

	return &http.Client{Transport: rec}
}

// cassettePath resolves name against the directory of the test file that
// called ReplayClient. Builds with -trimpath fall back to the working directory.
func cassettePath(name string) string {
	dir := "."
	if _, file, _, ok := runtime.Caller(2); ok && filepath.IsAbs(file) {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, "testdata", "fixtures", name)
}

// matchUpstreamRequest matches on method, URL and the Accept header the
// repository sends.
func matchUpstreamRequest(r *http.Request, i cassette.Request) bool {
	return r.Method == i.Method &&
		r.URL.String() == i.URL &&
		r.Header.Get("Accept") == i.Headers.Get("Accept")
}
