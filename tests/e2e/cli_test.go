package e2e_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/simpleloco/simpleloco/pkg/cli"
)

// locoHandler fakes the Loco export endpoint. The body echoes the requested
// file name; locale "xx" does not exist and locale "hu" is served as ISO-8859-2.
func locoHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutPrefix(r.URL.Path, "/api/export/locale/")
	if !ok || r.Header.Get("Authorization") != "Loco test-key" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	switch {
	case strings.HasPrefix(name, "xx."):
		http.NotFound(w, r)
	case strings.HasPrefix(name, "hu."):
		w.Header().Set("Content-Type", "text/plain; charset=iso-8859-2")
		// "őrült" in ISO-8859-2
		w.Write([]byte{0xf5, 'r', 0xfc, 'l', 't', '\n'})
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if q := r.URL.RawQuery; q != "" {
			name += "?" + q
		}
		w.Write([]byte(name + "\n"))
	}
}

func TestCLI(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(locoHandler))
	t.Cleanup(ts.Close)

	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			env.Setenv("LOCO_BASE_URL", ts.URL)
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

// TestMain acts as the main entrypoint. Testscript requires its own Main wrapper.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"simpleloco": cli.Execute,
	}))
}
