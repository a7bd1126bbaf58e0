package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/httpx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"github.com/aussiebroadwan/teamdir/pkg/teamsdk"
)

// MembersHandler serves the loaded directory as JSON.
type MembersHandler struct {
	Directory *service.DirectoryService
	Renderer  *render.Renderer
}

// HandleList handles the member list endpoint
//
//	@Summary		List members
//	@Description	Returns the members matching the grid controls, in display order
//	@Tags			Members
//	@Produce		json
//	@Param			q		query		string	false	"Case-insensitive substring of name, job title or NMLS"
//	@Param			role	query		string	false	"Exact role (lead, lo, ops)"
//	@Param			state	query		string	false	"State code the member is licensed in"
//	@Param			sort	query		string	false	"order (default), name or name-desc"
//	@Success		200		{object}	teamsdk.ListMembersResponse	"Filtered members"
//	@Failure		503		{object}	httpx.ErrorResponse			"Team data not loaded yet"
//	@Failure		500		{object}	httpx.ErrorResponse			"Internal server error"
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listing, err := h.Directory.Listing(ctx, service.ParseQuery(r.URL.Query()))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	resp := teamsdk.ListMembersResponse{
		Members: make([]teamsdk.Member, len(listing.Members)),
		Total:   listing.Total,
	}
	for i, m := range listing.Members {
		resp.Members[i] = h.toMember(m)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles the single member endpoint
//
//	@Summary		Get member
//	@Description	Returns the first member with the given slug
//	@Tags			Members
//	@Produce		json
//	@Param			slug	path		string	true	"Member slug"
//	@Success		200		{object}	teamsdk.Member		"Member"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown slug"
//	@Failure		503		{object}	httpx.ErrorResponse	"Team data not loaded yet"
//	@Router			/v1/members/{slug} [get].
func (h *MembersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := r.PathValue("slug")

	m, err := h.Directory.Profile(ctx, slug)
	if errors.Is(err, service.ErrProfileNotFound) {
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrorCodeNotFound, "no member with slug "+slug)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.toMember(m))
}

// HandleStates handles the state options endpoint
//
//	@Summary		List states
//	@Description	Returns the distinct state codes across all members, sorted
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	teamsdk.StatesResponse	"State codes"
//	@Failure		503	{object}	httpx.ErrorResponse		"Team data not loaded yet"
//	@Router			/v1/states [get].
func (h *MembersHandler) HandleStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.Directory.States(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if states == nil {
		states = []string{}
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.StatesResponse{States: states})
}

// HandleRoles handles the role options endpoint
//
//	@Summary		List roles
//	@Description	Returns the distinct roles across all members, sorted
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	teamsdk.RolesResponse	"Roles"
//	@Failure		503	{object}	httpx.ErrorResponse		"Team data not loaded yet"
//	@Router			/v1/roles [get].
func (h *MembersHandler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Directory.Roles(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	resp := teamsdk.RolesResponse{Roles: make([]string, len(roles))}
	for i, role := range roles {
		resp.Roles[i] = role.String()
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *MembersHandler) toMember(m domain.Member) teamsdk.Member {
	return teamsdk.Member{
		Name:       m.Name,
		Slug:       m.Slug,
		Role:       m.Role.String(),
		JobTitle:   m.JobTitle,
		NMLS:       m.NMLS.String(),
		Phone:      m.Phone,
		Email:      m.Email,
		PhotoFile:  m.PhotoFile,
		States:     m.States,
		Links:      m.Links,
		Order:      m.Order.Float(),
		Bio:        m.Bio,
		PhotoURL:   h.Renderer.PhotoURL(m.PhotoFile),
		ProfileURL: h.Renderer.ProfileURL(m.Slug),
		Tint:       m.Role.Tint(),
	}
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotLoaded) {
		httpx.WriteError(w, http.StatusServiceUnavailable, httpx.ErrorCodeNotReady, "team data not loaded yet")
		return
	}
	slogx.FromContext(r.Context()).Error("failed to read team data", "error", err)
	httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, "failed to read team data")
}
