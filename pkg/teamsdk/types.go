package teamsdk

import "time"

// ============================================================================
// Members
// ============================================================================

// Member is one teammate as served by the preview API. The stored fields are
// passed through; PhotoURL, ProfileURL and Tint are what the rendered card
// would use.
type Member struct {
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Role      string            `json:"role,omitempty"`
	JobTitle  string            `json:"jobTitle,omitempty"`
	NMLS      string            `json:"nmls,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	PhotoFile string            `json:"photoFile,omitempty"`
	States    []string          `json:"states,omitempty"`
	Links     map[string]string `json:"links,omitempty"`
	Order     *float64          `json:"order,omitempty"`
	Bio       string            `json:"bio,omitempty"`

	PhotoURL   string `json:"photoUrl"`
	ProfileURL string `json:"profileUrl"`
	Tint       string `json:"tint"`
}

// ListMembersParams are the grid controls: search box, role select, state
// select and sort select. Empty fields are left out of the request.
type ListMembersParams struct {
	Q     string
	Role  string
	State string
	Sort  string // "order" (default), "name" or "name-desc"
}

// ListMembersResponse is the filtered and sorted member list.
type ListMembersResponse struct {
	Members []Member `json:"members"`

	// Total is the size of the unfiltered list.
	Total int `json:"total"`
}

// StatesResponse lists the distinct state codes across all members.
type StatesResponse struct {
	States []string `json:"states"`
}

// RolesResponse lists the distinct roles across all members.
type RolesResponse struct {
	Roles []string `json:"roles"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks describes the loaded team data snapshot.
type HealthChecks struct {
	// Data is "ok" once a snapshot is loaded, otherwise the error
	Data string `json:"data"`

	// Source is the candidate URL the snapshot was read from
	Source string `json:"source,omitempty"`

	LoadedAt *time.Time `json:"loadedAt,omitempty"`
	Members  int        `json:"members"`
}
