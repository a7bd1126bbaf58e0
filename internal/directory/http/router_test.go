package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	dirhttp "github.com/aussiebroadwan/teamdir/internal/directory/http"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/internal/directory/store/drivers/memory"
	"github.com/aussiebroadwan/teamdir/pkg/httpx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"github.com/aussiebroadwan/teamdir/pkg/teamsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *domain.Rank { r := domain.Rank(f); return &r }

func members() []domain.Member {
	return []domain.Member{
		{Name: "Ben Ode", Slug: "ben", Role: domain.RoleLO, JobTitle: "Loan Officer", States: []string{"TX"}, Order: ptr(2)},
		{Name: "Ana Diaz", Slug: "ana", Role: domain.RoleLead, JobTitle: "Branch Manager", NMLS: "123456", PhotoFile: "Ana Diaz.jpg", States: []string{"CA", "TX"}, Order: ptr(1)},
		{Name: "Cy Park", Slug: "cy", Role: domain.RoleOps, States: []string{"WA"}},
	}
}

func newRouter(t *testing.T, st store.Store) *dirhttp.Router {
	t.Helper()
	rnd, err := render.New(render.Options{SiteName: "Our Team"})
	require.NoError(t, err)

	r := dirhttp.NewRouter("test", st, rnd, slogx.Discard())
	r.ApplyRoutes()
	return r
}

func loadedStore() store.Store {
	return memory.NewStoreWith(store.Snapshot{
		Members:  members(),
		Source:   "https://example.test/data/team.json",
		LoadedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGridPage(t *testing.T) {
	r := newRouter(t, loadedStore())

	rec := get(t, r, "/?state=TX&sort=name")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := rec.Body.String()
	assert.Contains(t, body, "2 of 3 teammates")
	assert.Contains(t, body, `<option value="TX" data-dynamic="true" selected>TX</option>`)
	assert.Contains(t, body, `href="/profile.html?slug=ana"`)
	assert.NotContains(t, body, "Cy Park")

	assert.Equal(t, http.StatusOK, get(t, r, "/index.html").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/nope").Code)
}

func TestGridPageBeforeLoad(t *testing.T) {
	r := newRouter(t, memory.NewStore())

	rec := get(t, r, "/")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Team data is not available yet.")
}

func TestProfilePage(t *testing.T) {
	r := newRouter(t, loadedStore())

	rec := get(t, r, "/profile.html?slug=ana")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h2>Ana Diaz</h2>")
	assert.Contains(t, rec.Body.String(), `src="/images/Ana%20Diaz.jpg"`)

	for _, target := range []string{"/profile.html?slug=zed", "/profile.html"} {
		rec := get(t, r, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Profile not found.", target)
	}
}

func TestMembersAPI(t *testing.T) {
	r := newRouter(t, loadedStore())

	t.Run("list", func(t *testing.T) {
		rec := get(t, r, "/v1/members?q=LOAN")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp teamsdk.ListMembersResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Total)
		require.Len(t, resp.Members, 1)
		assert.Equal(t, "ben", resp.Members[0].Slug)
		assert.Equal(t, "#D7E3FF", resp.Members[0].Tint)
		assert.Equal(t, "/images/placeholder.png", resp.Members[0].PhotoURL)
	})

	t.Run("get", func(t *testing.T) {
		rec := get(t, r, "/v1/members/ana")
		require.Equal(t, http.StatusOK, rec.Code)

		var m teamsdk.Member
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
		assert.Equal(t, "123456", m.NMLS)
		assert.Equal(t, "/profile.html?slug=ana", m.ProfileURL)
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := get(t, r, "/v1/members/zed")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var e httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
		assert.Equal(t, httpx.ErrorCodeNotFound, e.Error)
	})

	t.Run("states", func(t *testing.T) {
		rec := get(t, r, "/v1/states")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"states":["CA","TX","WA"]}`, rec.Body.String())
	})

	t.Run("roles", func(t *testing.T) {
		rec := get(t, r, "/v1/roles")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"roles":["lead","lo","ops"]}`, rec.Body.String())
	})
}

func TestMembersAPIBeforeLoad(t *testing.T) {
	r := newRouter(t, memory.NewStore())

	rec := get(t, r, "/v1/members")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var e httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	assert.Equal(t, httpx.ErrorCodeNotReady, e.Error)
}

func TestHealth(t *testing.T) {
	st := memory.NewStore()
	r := newRouter(t, st)

	assert.Equal(t, http.StatusOK, get(t, r, "/livez").Code)

	rec := get(t, r, "/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var health teamsdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "degraded", health.Status)

	require.NoError(t, st.Replace(context.Background(), store.Snapshot{Members: members(), Source: "a"}))

	rec = get(t, r, "/readyz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	assert.Equal(t, 3, health.Checks.Members)
	assert.Equal(t, "a", health.Checks.Source)
}

func TestImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Ana Diaz.jpg"), []byte("jpeg"), 0o600))

	rnd, err := render.New(render.Options{})
	require.NoError(t, err)
	r := dirhttp.NewRouter("test", loadedStore(), rnd, slogx.Discard())
	r.ImageDir = dir
	r.ApplyRoutes()

	rec := get(t, r, "/images/Ana%20Diaz.jpg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, r, "/images/missing.png").Code)
}

func TestSDKClient(t *testing.T) {
	srv := httptest.NewServer(newRouter(t, loadedStore()))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := teamsdk.NewSDKClient(srv.URL + "/")

	list, err := client.ListMembers(ctx, teamsdk.ListMembersParams{State: "TX", Sort: "name-desc"})
	require.NoError(t, err)
	require.Len(t, list.Members, 2)
	assert.Equal(t, "ben", list.Members[0].Slug)
	assert.Equal(t, "ana", list.Members[1].Slug)

	m, err := client.GetMember(ctx, "cy")
	require.NoError(t, err)
	assert.Equal(t, "ops", m.Role)

	_, err = client.GetMember(ctx, "zed")
	assert.True(t, teamsdk.IsNotFound(err))

	states, err := client.ListStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CA", "TX", "WA"}, states)

	roles, err := client.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lead", "lo", "ops"}, roles)

	health, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestSDKClientNotReady(t *testing.T) {
	srv := httptest.NewServer(newRouter(t, memory.NewStore()))
	t.Cleanup(srv.Close)

	client := teamsdk.NewSDKClient(srv.URL)

	_, err := client.GetReadiness(context.Background())
	assert.True(t, teamsdk.IsNotReady(err))

	_, err = client.ListMembers(context.Background(), teamsdk.ListMembersParams{})
	assert.True(t, teamsdk.IsNotReady(err))
}
