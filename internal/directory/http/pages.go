package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/httpx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
)

const notLoadedMessage = "Team data is not available yet. Try again in a moment."

// PagesHandler renders the grid and profile pages per request, reading the
// grid controls from the query string.
type PagesHandler struct {
	Directory *service.DirectoryService
	Renderer  *render.Renderer
}

// HandleGrid renders the directory grid filtered by q, role, state and sort.
func (h *PagesHandler) HandleGrid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := service.ParseQuery(r.URL.Query())

	listing, err := h.Directory.Listing(ctx, query)
	if err != nil {
		h.writeLoadError(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = h.Renderer.Grid(&buf, render.GridPage{
		Members: listing.Members,
		Total:   listing.Total,
		States:  listing.States,
		Roles:   listing.Roles,
		Filters: render.Filters{
			Q:     query.Q,
			Role:  query.Role.String(),
			State: query.State,
			Sort:  string(query.Sort),
		},
		Interactive: true,
	})
	if err != nil {
		h.writeRenderError(w, r, err)
		return
	}

	httpx.WriteHTML(w, http.StatusOK, buf.Bytes())
}

// HandleProfile renders profile.html?slug=<slug>. An unknown or missing slug
// renders the not-found page with a 404.
func (h *PagesHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var member *domain.Member
	status := http.StatusOK

	m, err := h.Directory.Profile(ctx, r.URL.Query().Get("slug"))
	switch {
	case err == nil:
		member = &m
	case errors.Is(err, service.ErrProfileNotFound):
		status = http.StatusNotFound
	default:
		h.writeLoadError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.Renderer.Profile(&buf, member); err != nil {
		h.writeRenderError(w, r, err)
		return
	}

	httpx.WriteHTML(w, status, buf.Bytes())
}

func (h *PagesHandler) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "Could not read the team data."
	if errors.Is(err, store.ErrNotLoaded) {
		status = http.StatusServiceUnavailable
		msg = notLoadedMessage
	} else {
		slogx.FromContext(r.Context()).Error("failed to read team data", "error", err)
	}

	var buf bytes.Buffer
	if err := h.Renderer.Message(&buf, msg); err != nil {
		h.writeRenderError(w, r, err)
		return
	}
	httpx.WriteHTML(w, status, buf.Bytes())
}

func (h *PagesHandler) writeRenderError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("failed to render page", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
