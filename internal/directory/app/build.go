package app

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/render"
	"github.com/aussiebroadwan/teamdir/internal/directory/site"
	"github.com/aussiebroadwan/teamdir/internal/directory/source"
	"github.com/aussiebroadwan/teamdir/internal/directory/store"
)

// Load fetches the team data once from the configured candidates.
func Load(ctx context.Context, cfg Config) (store.Snapshot, error) {
	res, err := source.NewClient(cfg.Candidates(), cfg.FetchTimeout).Load(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}
	return store.Snapshot{
		Members:  res.Members,
		Source:   res.Source,
		LoadedAt: time.Now().UTC(),
	}, nil
}

// Build loads the team data and writes the static site to cfg.OutDir.
func Build(ctx context.Context, cfg Config) (site.Manifest, error) {
	snap, err := Load(ctx, cfg)
	if err != nil {
		return site.Manifest{}, err
	}

	renderer, err := render.New(render.Options{
		SiteName: cfg.SiteName,
		BasePath: cfg.BasePath,
		Links:    render.LinkStatic,
	})
	if err != nil {
		return site.Manifest{}, fmt.Errorf("failed to initialize templates: %w", err)
	}

	b := &site.Builder{
		Renderer: renderer,
		OutDir:   cfg.OutDir,
		ImageDir: cfg.ImageDir,
	}
	return b.Build(ctx, snap)
}
