package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/source"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SiteName   string `envconfig:"TEAMDIR_SITE_NAME" default:"Our Team"`
	SiteOrigin string `envconfig:"TEAMDIR_SITE_ORIGIN"` // e.g. https://example.github.io, used for the default data candidates
	BasePath   string `envconfig:"TEAMDIR_BASE_PATH"`   // e.g. /Teammate-Database for a project site

	// DataCandidates overrides the default <origin><base>/data/team.json,
	// <origin><base>/data/teammates.json list. Comma separated URLs or paths.
	DataCandidates []string `envconfig:"TEAMDIR_DATA_CANDIDATES"`

	ImageDir string `envconfig:"TEAMDIR_IMAGE_DIR"`                // local images served under /images/ and copied by build
	OutDir   string `envconfig:"TEAMDIR_OUT_DIR" default:"public"` // static build output

	Env                 string        `envconfig:"ENV" default:"dev"`                   // dev, staging, prod
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`            // debug, info, warn, error
	LogFormat           string        `envconfig:"LOG_FORMAT" default:"text"`           // json, text
	Port                int           `envconfig:"PORT" default:"8080"`                 // preview server port
	ShutdownGracePeriod time.Duration `envconfig:"SHUTDOWN_GRACE_PERIOD" default:"10s"` // graceful shutdown timeout
	RefreshInterval     time.Duration `envconfig:"REFRESH_INTERVAL" default:"5m"`       // preview data reload interval
	FetchTimeout        time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`         // per candidate request timeout
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Candidates returns the data candidates to try in order.
func (c Config) Candidates() []string {
	var out []string
	for _, cand := range c.DataCandidates {
		if cand = strings.TrimSpace(cand); cand != "" {
			out = append(out, cand)
		}
	}
	if len(out) > 0 {
		return out
	}
	if c.SiteOrigin == "" {
		// No site to fetch from: read a checked out copy of the repo.
		return []string{"data/team.json", "data/teammates.json"}
	}
	return source.DefaultCandidates(c.SiteOrigin, c.BasePath)
}
