package domain

// Role groups members for filtering and picks the card background tint.
type Role string

const (
	RoleLead Role = "lead"
	RoleLO   Role = "lo"
	RoleOps  Role = "ops"
)

// DefaultTint is used for roles without a dedicated colour.
const DefaultTint = "#EEF2FF"

var roleTints = map[Role]string{
	RoleLead: "#E3F2FF",
	RoleLO:   "#D7E3FF",
	RoleOps:  "#FFE6C8",
}

// Tint returns the CSS colour for the card background.
func (r Role) Tint() string {
	if c, ok := roleTints[r]; ok {
		return c
	}
	return DefaultTint
}

func (r Role) String() string { return string(r) }
