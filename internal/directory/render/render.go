package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// LinkStyle decides how cards point at profile pages.
type LinkStyle int

const (
	// LinkQuery links to profile.html?slug=<slug>, served by the preview.
	LinkQuery LinkStyle = iota
	// LinkStatic links to profile/<slug>.html, written by the site builder.
	LinkStatic
)

type Options struct {
	SiteName string
	// BasePath is the path prefix the site is published under, e.g.
	// "/Teammate-Database" for a project site. Empty for a root site.
	BasePath string
	Links    LinkStyle
}

// Renderer turns members into HTML pages. It is safe for concurrent use.
type Renderer struct {
	opts    Options
	grid    *template.Template
	profile *template.Template
	message *template.Template

	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func New(opts Options) (*Renderer, error) {
	opts.BasePath = strings.TrimSuffix(opts.BasePath, "/")
	if opts.SiteName == "" {
		opts.SiteName = "Our Team"
	}

	parse := func(name string, content string) (*template.Template, error) {
		t, err := template.New(name).Parse(layoutTemplate)
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(cardTemplate); err != nil {
			return nil, err
		}
		if _, err := t.Parse(content); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		return t, nil
	}

	r := &Renderer{
		opts:     opts,
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}

	var err error
	if r.grid, err = parse("grid", gridTemplate); err != nil {
		return nil, err
	}
	if r.profile, err = parse("profile", profileTemplate); err != nil {
		return nil, err
	}
	if r.message, err = parse("message", messageTemplate); err != nil {
		return nil, err
	}
	return r, nil
}

// Home is the URL of the grid page.
func (r *Renderer) Home() string {
	return r.opts.BasePath + "/"
}

// PhotoURL returns the image URL for a photo file name.
func (r *Renderer) PhotoURL(file string) string {
	return r.opts.BasePath + "/images/" + SafeFile(file)
}

// ProfileURL returns the link to a member's profile page.
func (r *Renderer) ProfileURL(slug string) string {
	if r.opts.Links == LinkStatic {
		if slug == "" {
			return r.opts.BasePath + "/profile.html"
		}
		return r.opts.BasePath + "/profile/" + EncodeURIComponent(slug) + ".html"
	}
	return r.opts.BasePath + "/profile.html?slug=" + EncodeURIComponent(slug)
}

// StateURL returns the static per-state page for a jurisdiction code.
func (r *Renderer) StateURL(code string) string {
	return r.opts.BasePath + "/state/" + EncodeURIComponent(code) + ".html"
}

// ProfileFileName is the file written for a slug under profile/. It is the
// decoded form of the ProfileURL path segment, which is what static hosts
// look up.
func ProfileFileName(slug string) string {
	return slug + ".html"
}

// StateFileName is the file written for a state code under state/.
func StateFileName(code string) string {
	return code + ".html"
}

// Filters is the current state of the grid controls.
type Filters struct {
	Q     string
	Role  string
	State string
	Sort  string
}

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// GridPage is everything the grid view needs.
type GridPage struct {
	Title   string
	Members []domain.Member // already filtered and sorted
	Total   int             // size of the unfiltered list
	Filters Filters
	States  []string
	Roles   []domain.Role
	Notice  string

	// Interactive renders the search form. Static builds link to per-state
	// pages instead since there is nothing to submit the form to.
	Interactive bool
}

type cardView struct {
	Name     string
	JobTitle string
	NMLS     string
	Phone    string
	Email    string
	Href     string
	Photo    string
	Tint     string
	Alt      string
	States   []string
}

type stateLink struct {
	Label    string
	Href     string
	Selected bool
}

type gridView struct {
	Title        string
	SiteName     string
	Home         string
	Interactive  bool
	Filters      Filters
	RoleOptions  []Option
	StateOptions []Option
	SortOptions  []Option
	StateLinks   []stateLink
	Notice       string
	Shown        int
	Total        int
	Cards        []cardView
}

// card builds the view of one grid card.
func (r *Renderer) card(m domain.Member) cardView {
	return cardView{
		Name:     m.Name,
		JobTitle: m.JobTitle,
		NMLS:     m.NMLS.String(),
		Phone:    m.Phone,
		Email:    m.Email,
		Href:     r.ProfileURL(m.Slug),
		Photo:    r.PhotoURL(m.PhotoFile),
		Tint:     m.Role.Tint(),
		Alt:      fmt.Sprintf("%s — %s %s", m.Name, m.JobTitle, m.NMLS),
		States:   m.CardStates(),
	}
}

// StateOptions builds the dynamic options of the state select from the
// distinct states of the loaded data.
func StateOptions(states []string, selected string) []Option {
	opts := make([]Option, len(states))
	for i, s := range states {
		opts[i] = Option{Value: s, Label: s, Selected: s == selected}
	}
	return opts
}

var roleLabels = map[domain.Role]string{
	domain.RoleLead: "Leadership",
	domain.RoleLO:   "Loan Officers",
	domain.RoleOps:  "Operations",
}

// RoleOptions builds the role select. Roles without a friendly label show
// their raw value.
func RoleOptions(roles []domain.Role, selected string) []Option {
	opts := make([]Option, len(roles))
	for i, role := range roles {
		label, ok := roleLabels[role]
		if !ok {
			label = role.String()
		}
		opts[i] = Option{Value: role.String(), Label: label, Selected: role.String() == selected}
	}
	return opts
}

// SortOptions builds the sort select; an unknown selection falls back to
// the default "order".
func SortOptions(selected string) []Option {
	opts := []Option{
		{Value: "order", Label: "Featured"},
		{Value: "name", Label: "Name A–Z"},
		{Value: "name-desc", Label: "Name Z–A"},
	}
	found := false
	for i := range opts {
		if opts[i].Value == selected {
			opts[i].Selected = true
			found = true
		}
	}
	if !found {
		opts[0].Selected = true
	}
	return opts
}

// Grid writes the directory grid page.
func (r *Renderer) Grid(w io.Writer, page GridPage) error {
	v := gridView{
		Title:       page.Title,
		SiteName:    r.opts.SiteName,
		Home:        r.Home(),
		Interactive: page.Interactive,
		Filters:     page.Filters,
		Notice:      page.Notice,
		Shown:       len(page.Members),
		Total:       page.Total,
		Cards:       make([]cardView, len(page.Members)),
	}
	if v.Title == "" {
		v.Title = r.opts.SiteName
	}

	for i, m := range page.Members {
		v.Cards[i] = r.card(m)
	}

	if page.Interactive {
		v.RoleOptions = RoleOptions(page.Roles, page.Filters.Role)
		v.StateOptions = StateOptions(page.States, page.Filters.State)
		v.SortOptions = SortOptions(page.Filters.Sort)
	} else {
		for _, s := range page.States {
			v.StateLinks = append(v.StateLinks, stateLink{
				Label:    s,
				Href:     r.StateURL(s),
				Selected: s == page.Filters.State,
			})
		}
	}

	return execute(w, r.grid, v)
}

type profileView struct {
	Title    string
	SiteName string
	Home     string
	Found    bool
	Name     string
	JobTitle string
	NMLS     string
	Phone    string
	Email    string
	Photo    string
	States   []string
	Links    []domain.Link
	Bio      template.HTML
}

// Profile writes a member's detail page. A nil member renders the
// "Profile not found." page.
func (r *Renderer) Profile(w io.Writer, m *domain.Member) error {
	v := profileView{
		Title:    "Profile not found · " + r.opts.SiteName,
		SiteName: r.opts.SiteName,
		Home:     r.Home(),
	}

	if m != nil {
		bio, err := r.Markdown(m.Bio)
		if err != nil {
			return err
		}
		v.Title = m.Name + " · " + r.opts.SiteName
		v.Found = true
		v.Name = m.Name
		v.JobTitle = m.JobTitle
		v.NMLS = m.NMLS.String()
		v.Phone = m.Phone
		v.Email = m.Email
		v.Photo = r.PhotoURL(m.PhotoFile)
		v.States = m.States
		v.Links = m.SortedLinks()
		v.Bio = bio
	}

	return execute(w, r.profile, v)
}

type messageView struct {
	Title    string
	SiteName string
	Home     string
	Message  string
}

// Message writes a bare page with a single message, used when the team data
// could not be loaded.
func (r *Renderer) Message(w io.Writer, msg string) error {
	return execute(w, r.message, messageView{
		Title:    r.opts.SiteName,
		SiteName: r.opts.SiteName,
		Home:     r.Home(),
		Message:  msg,
	})
}

// Markdown converts a Markdown bio to sanitised HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render bio: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitised above
}

// execute renders into a buffer first so a template error never leaves a
// half written page behind.
func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", t.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
