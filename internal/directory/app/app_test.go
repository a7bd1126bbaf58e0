package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/app"
	"github.com/aussiebroadwan/teamdir/internal/directory/site"
	"github.com/aussiebroadwan/teamdir/internal/directory/source"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Our Team", cfg.SiteName)
	assert.Equal(t, "public", cfg.OutDir)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, []string{"data/team.json", "data/teammates.json"}, cfg.Candidates())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TEAMDIR_SITE_ORIGIN", "https://example.github.io/")
	t.Setenv("TEAMDIR_BASE_PATH", "/Teammate-Database")
	t.Setenv("PORT", "9090")
	t.Setenv("REFRESH_INTERVAL", "30s")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
	assert.Equal(t, []string{
		"https://example.github.io/Teammate-Database/data/team.json",
		"https://example.github.io/Teammate-Database/data/teammates.json",
	}, cfg.Candidates())

	t.Setenv("TEAMDIR_DATA_CANDIDATES", "a.json, ,b.yaml")
	cfg, err = app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.Candidates())
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := app.LoadConfig()
	require.Error(t, err)
}

func writeTeam(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Ana Diaz", "slug": "ana", "role": "lead", "nmls": 123456, "states": ["CA"]},
		{"name": "Ben Ode", "slug": "ben", "role": "lo", "states": ["TX"], "order": 1}
	]`), 0o600))
	return path
}

func TestBuild(t *testing.T) {
	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	cfg.DataCandidates = []string{filepath.Join(t.TempDir(), "missing.json"), writeTeam(t)}
	cfg.OutDir = t.TempDir()
	cfg.BasePath = "/Teammate-Database"

	m, err := app.Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Count)

	index, err := os.ReadFile(filepath.Join(cfg.OutDir, site.IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/Teammate-Database/profile/ana.html"`)
}

func TestBuildNoData(t *testing.T) {
	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	cfg.DataCandidates = []string{filepath.Join(t.TempDir(), "missing.json")}
	cfg.OutDir = t.TempDir()

	_, err = app.Build(context.Background(), cfg)
	require.ErrorIs(t, err, source.ErrNoData)
}

func TestApplicationHandler(t *testing.T) {
	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	cfg.DataCandidates = []string{writeTeam(t)}

	a, err := app.New(cfg, slogx.Discard())
	require.NoError(t, err)

	// Nothing is loaded until Run starts the refresher.
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
