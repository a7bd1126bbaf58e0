package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultOrder is the rank used for members without an explicit order, which
// pushes them behind everyone that has one.
const DefaultOrder = 9999

// MaxCardStates is how many state badges a grid card shows.
const MaxCardStates = 6

// Member is one record of the team data file.
type Member struct {
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Role      Role              `json:"role,omitempty"`
	JobTitle  string            `json:"jobTitle,omitempty"`
	NMLS      LicenseID         `json:"nmls,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	PhotoFile string            `json:"photoFile,omitempty"`
	States    []string          `json:"states,omitempty"`
	Links     map[string]string `json:"links,omitempty"`
	Order     *Rank             `json:"order,omitempty"`
	Bio       string            `json:"bio,omitempty"` // Markdown
}

// SortOrder returns the display rank, falling back to DefaultOrder.
func (m Member) SortOrder() float64 {
	if m.Order == nil {
		return DefaultOrder
	}
	return float64(*m.Order)
}

// HasState reports whether the member is licensed in the given jurisdiction.
func (m Member) HasState(code string) bool {
	return slices.Contains(m.States, code)
}

// CardStates returns the badges shown on a grid card.
func (m Member) CardStates() []string {
	if len(m.States) > MaxCardStates {
		return m.States[:MaxCardStates]
	}
	return m.States
}

// SearchText is the lower-cased haystack the grid search runs against: the
// non-empty values of name, job title and NMLS joined by a space.
func (m Member) SearchText() string {
	parts := make([]string, 0, 3)
	for _, v := range []string{m.Name, m.JobTitle, m.NMLS.String()} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Link is one labelled entry of Member.Links.
type Link struct {
	Label string
	URL   string
}

// SortedLinks returns the non-empty links ordered by label.
func (m Member) SortedLinks() []Link {
	links := make([]Link, 0, len(m.Links))
	for label, url := range m.Links {
		if url == "" {
			continue
		}
		links = append(links, Link{Label: label, URL: url})
	}
	slices.SortFunc(links, func(a, b Link) int {
		return strings.Compare(a.Label, b.Label)
	})
	return links
}

// LicenseID is an NMLS number. Data files carry it both as a JSON string and
// as a bare number, so it accepts either.
type LicenseID string

func (l LicenseID) String() string { return string(l) }

func (l *LicenseID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = LicenseID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("nmls: expected string or number, got %s", b)
	}
	*l = LicenseID(n.String())
	return nil
}

// Rank is a display position. Data files carry it as a number or as a
// numeric string. A value that is neither sorts like a missing one.
type Rank float64

// Float returns the rank as a plain number, or nil when unset.
func (r *Rank) Float() *float64 {
	if r == nil {
		return nil
	}
	f := float64(*r)
	return &f
}

func (r *Rank) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("true")):
		*r = 1
		return nil
	case bytes.Equal(b, []byte("false")):
		*r = 0
		return nil
	}

	text := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*r = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*r = DefaultOrder
		return nil
	}
	*r = Rank(f)
	return nil
}
