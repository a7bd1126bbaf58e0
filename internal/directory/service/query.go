package service

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort is the grid ordering selected by the "sort" control.
type Sort string

const (
	SortOrder    Sort = "order"
	SortName     Sort = "name"
	SortNameDesc Sort = "name-desc"
)

// Query mirrors the grid controls: search box, role select, state select and
// sort select. Zero values mean "no filter" and default ordering.
type Query struct {
	Q     string
	Role  domain.Role
	State string
	Sort  Sort
}

// ParseQuery reads a Query from the grid's query string (q, role, state, sort).
func ParseQuery(v url.Values) Query {
	return Query{
		Q:     v.Get("q"),
		Role:  domain.Role(v.Get("role")),
		State: v.Get("state"),
		Sort:  Sort(v.Get("sort")),
	}
}

// Values encodes the query back into url.Values, leaving out empty fields.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	if q.Role != "" {
		v.Set("role", q.Role.String())
	}
	if q.State != "" {
		v.Set("state", q.State)
	}
	if q.Sort != "" && q.Sort != SortOrder {
		v.Set("sort", string(q.Sort))
	}
	return v
}

// Apply filters and sorts members according to q. The input slice is not
// modified.
func Apply(members []domain.Member, q Query) []domain.Member {
	needle := strings.ToLower(strings.TrimSpace(q.Q))

	items := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if needle != "" && !strings.Contains(m.SearchText(), needle) {
			continue
		}
		if q.Role != "" && m.Role != q.Role {
			continue
		}
		if q.State != "" && !m.HasState(q.State) {
			continue
		}
		items = append(items, m)
	}

	switch q.Sort {
	case SortName:
		c := newNameCollator()
		slices.SortStableFunc(items, func(a, b domain.Member) int {
			return c.CompareString(a.Name, b.Name)
		})
	case SortNameDesc:
		c := newNameCollator()
		slices.SortStableFunc(items, func(a, b domain.Member) int {
			return c.CompareString(b.Name, a.Name)
		})
	default:
		slices.SortStableFunc(items, func(a, b domain.Member) int {
			return cmp.Compare(a.SortOrder(), b.SortOrder())
		})
	}

	return items
}

// newNameCollator returns a locale aware collator for names. Collators keep
// internal buffers and are not safe for concurrent use, so each sort gets its
// own.
func newNameCollator() *collate.Collator {
	return collate.New(language.English)
}

// DistinctStates returns every state code present in members, sorted.
func DistinctStates(members []domain.Member) []string {
	seen := make(map[string]struct{})
	for _, m := range members {
		for _, s := range m.States {
			seen[s] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// DistinctRoles returns every non-empty role present in members, sorted.
func DistinctRoles(members []domain.Member) []domain.Role {
	seen := make(map[string]struct{})
	for _, m := range members {
		if m.Role != "" {
			seen[m.Role.String()] = struct{}{}
		}
	}
	keys := sortedKeys(seen)
	roles := make([]domain.Role, len(keys))
	for i, k := range keys {
		roles[i] = domain.Role(k)
	}
	return roles
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
