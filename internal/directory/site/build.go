package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/idx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrUnsafeSlug    = errors.New("slug is not usable as a file name")
	ErrUnsafeState   = errors.New("state code is not usable as a file name")
)

const (
	IndexFile    = "index.html"
	NotFoundFile = "profile.html"
	DataFile     = "team.json"
	ManifestFile = "manifest.json"
	ProfileDir   = "profile"
	StateDir     = "state"
	ImageDir     = "images"
)

// Manifest describes one build and is written next to the pages.
type Manifest struct {
	BuildID     string    `json:"buildId"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generatedAt"`
	Count       int       `json:"count"`
	States      []string  `json:"states"`
}

// Builder writes the static site for one snapshot.
type Builder struct {
	Renderer *render.Renderer
	OutDir   string

	// ImageDir, when set, is copied to <OutDir>/images.
	ImageDir string

	// Concurrency bounds the profile page writers; zero means GOMAXPROCS.
	Concurrency int

	Now func() time.Time
}

// Build renders every page for snap into OutDir. Existing files with the same
// names are overwritten; nothing else in OutDir is touched.
func (b *Builder) Build(ctx context.Context, snap store.Snapshot) (Manifest, error) {
	if err := checkSlugs(snap.Members); err != nil {
		return Manifest{}, err
	}
	// A blank code has no page to link to.
	states := slices.DeleteFunc(service.DistinctStates(snap.Members), func(s string) bool { return s == "" })
	for _, s := range states {
		if !safeSegment(s) {
			return Manifest{}, fmt.Errorf("%w: %q", ErrUnsafeState, s)
		}
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	generatedAt := now().UTC()
	buildID := idx.NewAt(generatedAt).String()
	ctx = slogx.WithBuildID(ctx, buildID)
	logger := slogx.FromContext(ctx)

	for _, dir := range []string{b.OutDir, filepath.Join(b.OutDir, ProfileDir), filepath.Join(b.OutDir, StateDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Manifest{}, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if err := b.writeGrid(IndexFile, snap.Members, states, ""); err != nil {
		return Manifest{}, err
	}
	for _, s := range states {
		if err := b.writeGrid(filepath.Join(StateDir, render.StateFileName(s)), snap.Members, states, s); err != nil {
			return Manifest{}, err
		}
	}

	if err := b.writeProfiles(ctx, snap.Members); err != nil {
		return Manifest{}, err
	}

	var notFound bytes.Buffer
	if err := b.Renderer.Profile(&notFound, nil); err != nil {
		return Manifest{}, err
	}
	if err := b.writeFile(NotFoundFile, notFound.Bytes()); err != nil {
		return Manifest{}, err
	}

	if err := b.writeJSON(DataFile, snap.Members); err != nil {
		return Manifest{}, err
	}

	if b.ImageDir != "" {
		n, err := copyDir(b.ImageDir, filepath.Join(b.OutDir, ImageDir))
		if err != nil {
			return Manifest{}, fmt.Errorf("copy images: %w", err)
		}
		logger.Debug("images copied", "count", n)
	}

	m := Manifest{
		BuildID:     buildID,
		Source:      snap.Source,
		GeneratedAt: generatedAt,
		Count:       len(snap.Members),
		States:      states,
	}
	if err := b.writeJSON(ManifestFile, m); err != nil {
		return Manifest{}, err
	}

	logger.Info("site built",
		"out_dir", b.OutDir,
		"members", m.Count,
		"states", len(states),
		"source", snap.Source,
	)
	return m, nil
}

func (b *Builder) writeGrid(name string, members []domain.Member, states []string, state string) error {
	page := render.GridPage{
		Members: service.Apply(members, service.Query{State: state}),
		Total:   len(members),
		States:  states,
		Filters: render.Filters{State: state},
	}
	if state != "" {
		page.Title = "Licensed in " + state
	}

	var buf bytes.Buffer
	if err := b.Renderer.Grid(&buf, page); err != nil {
		return err
	}
	return b.writeFile(name, buf.Bytes())
}

func (b *Builder) writeProfiles(ctx context.Context, members []domain.Member) error {
	limit := b.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range members {
		m := &members[i]
		if m.Slug == "" {
			slogx.FromContext(ctx).Warn("member without slug has no profile page", "name", m.Name)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := b.Renderer.Profile(&buf, m); err != nil {
				return fmt.Errorf("profile %q: %w", m.Slug, err)
			}
			return b.writeFile(filepath.Join(ProfileDir, render.ProfileFileName(m.Slug)), buf.Bytes())
		})
	}
	return g.Wait()
}

func (b *Builder) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return b.writeFile(name, append(data, '\n'))
}

func (b *Builder) writeFile(name string, data []byte) error {
	path := filepath.Join(b.OutDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // published site content
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// checkSlugs rejects data where two members share a slug, since only the
// first could ever be reached.
func checkSlugs(members []domain.Member) error {
	seen := make(map[string]string, len(members))
	for _, m := range members {
		if m.Slug == "" {
			continue
		}
		if !safeSegment(m.Slug) {
			return fmt.Errorf("%w: %q (%s)", ErrUnsafeSlug, m.Slug, m.Name)
		}
		if prev, ok := seen[m.Slug]; ok {
			return fmt.Errorf("%w %q: %s and %s", ErrDuplicateSlug, m.Slug, prev, m.Name)
		}
		seen[m.Slug] = m.Name
	}
	return nil
}

// safeSegment reports whether s can name a file inside a single output
// directory without escaping it.
func safeSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}

// copyDir copies regular files from src into dst, keeping relative paths.
func copyDir(src, dst string) (int, error) {
	n := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		n++
		return nil
	})
	return n, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
