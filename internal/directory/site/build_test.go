package site_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/site"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T) *site.Builder {
	t.Helper()
	r, err := render.New(render.Options{SiteName: "Our Team", Links: render.LinkStatic})
	require.NoError(t, err)
	return &site.Builder{
		Renderer: r,
		OutDir:   t.TempDir(),
		Now:      func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) },
	}
}

func snapshot() store.Snapshot {
	return store.Snapshot{
		Source: "https://example.test/data/team.json",
		Members: []domain.Member{
			{Name: "Ana Diaz", Slug: "ana", Role: domain.RoleLead, States: []string{"CA", "TX"}},
			{Name: "Ben Ode", Slug: "ben", Role: domain.RoleLO, States: []string{"TX"}},
			{Name: "No Slug"},
		},
	}
}

func read(t *testing.T, path ...string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(b)
}

func TestBuild(t *testing.T) {
	b := newBuilder(t)

	m, err := b.Build(context.Background(), snapshot())
	require.NoError(t, err)

	assert.Equal(t, 3, m.Count)
	assert.Equal(t, []string{"CA", "TX"}, m.States)
	assert.Equal(t, "https://example.test/data/team.json", m.Source)
	id, err := idx.Parse(m.BuildID)
	require.NoError(t, err)
	assert.Equal(t, b.Now(), id.Time())

	index := read(t, b.OutDir, site.IndexFile)
	assert.Contains(t, index, `href="/profile/ana.html"`)
	assert.Contains(t, index, `href="/profile/ben.html"`)
	assert.Contains(t, index, `href="/state/CA.html"`)
	assert.Contains(t, index, "3 of 3 teammates")

	ca := read(t, b.OutDir, site.StateDir, "CA.html")
	assert.Contains(t, ca, "1 of 3 teammates")
	assert.Contains(t, ca, "Ana Diaz")
	assert.NotContains(t, ca, "Ben Ode")

	assert.Contains(t, read(t, b.OutDir, site.ProfileDir, "ana.html"), "<h2>Ana Diaz</h2>")
	assert.Contains(t, read(t, b.OutDir, site.ProfileDir, "ben.html"), "<h2>Ben Ode</h2>")
	assert.Contains(t, read(t, b.OutDir, site.NotFoundFile), "Profile not found.")

	entries, err := os.ReadDir(filepath.Join(b.OutDir, site.ProfileDir))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "members without a slug get no page")

	var members []domain.Member
	require.NoError(t, json.Unmarshal([]byte(read(t, b.OutDir, site.DataFile)), &members))
	assert.Len(t, members, 3)

	var manifest site.Manifest
	require.NoError(t, json.Unmarshal([]byte(read(t, b.OutDir, site.ManifestFile)), &manifest))
	assert.Equal(t, m.BuildID, manifest.BuildID)
}

func TestBuildRejectsDuplicateSlugs(t *testing.T) {
	b := newBuilder(t)
	snap := snapshot()
	snap.Members = append(snap.Members, domain.Member{Name: "Ana Two", Slug: "ana"})

	_, err := b.Build(context.Background(), snap)
	require.ErrorIs(t, err, site.ErrDuplicateSlug)

	_, statErr := os.Stat(filepath.Join(b.OutDir, site.IndexFile))
	assert.True(t, os.IsNotExist(statErr), "nothing is written for rejected data")
}

func TestBuildLinksResolveOnStaticHost(t *testing.T) {
	b := newBuilder(t)
	snap := store.Snapshot{Members: []domain.Member{
		{Name: "Ana Diaz", Slug: "ana diaz", States: []string{"CA", "Puerto Rico"}},
		{Name: "José Ruiz", Slug: "josé", States: []string{"TX"}},
		{Name: "Kim Park", Slug: "kim+park", States: []string{"TX"}},
	}}

	_, err := b.Build(context.Background(), snap)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(b.OutDir, site.ProfileDir, "ana diaz.html"))
	assert.FileExists(t, filepath.Join(b.OutDir, site.ProfileDir, "josé.html"))
	assert.FileExists(t, filepath.Join(b.OutDir, site.StateDir, "Puerto Rico.html"))

	srv := httptest.NewServer(http.FileServer(http.Dir(b.OutDir)))
	t.Cleanup(srv.Close)

	hrefs := regexp.MustCompile(`href="(/(?:profile|state)/[^"]+)"`).
		FindAllStringSubmatch(read(t, b.OutDir, site.IndexFile), -1)
	require.Len(t, hrefs, 6, "three profiles and three states")

	for _, h := range hrefs {
		resp, err := http.Get(srv.URL + h[1])
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, h[1])
	}
}

func TestBuildRejectsUnsafeNames(t *testing.T) {
	for _, slug := range []string{"..", ".", "../index", `a\b`, "a\x00b"} {
		t.Run(slug, func(t *testing.T) {
			b := newBuilder(t)
			snap := store.Snapshot{Members: []domain.Member{{Name: "Ana", Slug: slug}}}

			_, err := b.Build(context.Background(), snap)
			require.ErrorIs(t, err, site.ErrUnsafeSlug)
		})
	}

	t.Run("blank state is skipped", func(t *testing.T) {
		b := newBuilder(t)
		snap := store.Snapshot{Members: []domain.Member{{Name: "Ana", Slug: "ana", States: []string{"", "CA"}}}}

		m, err := b.Build(context.Background(), snap)
		require.NoError(t, err)
		assert.Equal(t, []string{"CA"}, m.States)
	})

	t.Run("state", func(t *testing.T) {
		b := newBuilder(t)
		snap := store.Snapshot{Members: []domain.Member{{Name: "Ana", Slug: "ana", States: []string{"CA/TX"}}}}

		_, err := b.Build(context.Background(), snap)
		require.ErrorIs(t, err, site.ErrUnsafeState)

		_, statErr := os.Stat(filepath.Join(b.OutDir, site.IndexFile))
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestBuildCopiesImages(t *testing.T) {
	b := newBuilder(t)
	b.ImageDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(b.ImageDir, "placeholder.png"), []byte("png"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(b.ImageDir, "team"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(b.ImageDir, "team", "ana.jpg"), []byte("jpg"), 0o600))

	_, err := b.Build(context.Background(), snapshot())
	require.NoError(t, err)

	assert.Equal(t, "png", read(t, b.OutDir, site.ImageDir, "placeholder.png"))
	assert.Equal(t, "jpg", read(t, b.OutDir, site.ImageDir, "team", "ana.jpg"))
}

func TestBuildCancelled(t *testing.T) {
	b := newBuilder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx, snapshot())
	require.ErrorIs(t, err, context.Canceled)
}
