package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pders01/fna-context/internal/config"
	"github.com/pders01/fna-context/internal/testutil"
	"github.com/spf13/viper"
)

const testDocument = `# Notes

- if i type FNA - then remember this
  old status

---
footer
`

// setupWorkspace points the global viper config at a fresh workspace
func setupWorkspace(t *testing.T, status int) *testutil.Workspace {
	t.Helper()

	ws := testutil.NewWorkspace(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	viper.Reset()
	t.Cleanup(viper.Reset)

	config.SetDefaults(viper.GetViper())
	viper.Set("project.root", ws.Path)
	viper.Set("document.path", ws.File("CLAUDE.md"))
	viper.Set("health.url", server.URL+"/summary")
	viper.Set("health.timeout", "1s")

	return ws
}
