package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/pkg/idx"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
)

// ErrNoData is returned when none of the candidates produced a response.
var ErrNoData = errors.New("no team data found")

// maxBodyBytes caps how much of a data file we are willing to read.
const maxBodyBytes = 10 << 20

// DefaultCandidates returns the data locations tried when nothing else is
// configured: team.json first, then the older teammates.json name.
func DefaultCandidates(origin, basePath string) []string {
	root := strings.TrimSuffix(origin, "/") + strings.TrimSuffix(basePath, "/")
	return []string{
		root + "/data/team.json",
		root + "/data/teammates.json",
	}
}

// Client loads the team list from the first candidate that answers.
// Candidates are http(s) URLs, file:// URLs or plain local paths.
type Client struct {
	Candidates []string
	HTTPClient *http.Client

	// CacheBuster returns the value of the "v" query parameter appended to
	// every HTTP candidate. Defaults to a fresh ULID per request.
	CacheBuster func() string
}

// NewClient creates a loader with a bounded per-request timeout.
func NewClient(candidates []string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		Candidates: candidates,
		HTTPClient: &http.Client{Timeout: timeout},
		CacheBuster: func() string {
			return idx.New().String()
		},
	}
}

// Result is a successful load.
type Result struct {
	Members []domain.Member
	Source  string
}

// Load walks the candidates in order. A candidate that fails to respond or
// answers with a non-2xx status is skipped. The first one that answers is
// decoded; a decode failure there is returned as is, the remaining
// candidates are not tried.
func (c *Client) Load(ctx context.Context) (Result, error) {
	log := slogx.FromContext(ctx)

	if len(c.Candidates) == 0 {
		return Result{}, fmt.Errorf("%w: no candidates configured", ErrNoData)
	}

	for _, candidate := range c.Candidates {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		body, format, err := c.fetch(ctx, candidate)
		if err != nil {
			log.Debug("team data candidate skipped",
				slog.String("candidate", candidate),
				slog.Any("error", err),
			)
			continue
		}

		members, err := Decode(body, format)
		if err != nil {
			return Result{}, fmt.Errorf("decode %s: %w", candidate, err)
		}

		log.Info("team data loaded",
			slog.String("source", candidate),
			slog.Int("members", len(members)),
		)
		return Result{Members: members, Source: candidate}, nil
	}

	return Result{}, fmt.Errorf("%w at %s", ErrNoData, strings.Join(c.Candidates, ", "))
}

func (c *Client) fetch(ctx context.Context, candidate string) ([]byte, Format, error) {
	u, err := url.Parse(candidate)
	if err != nil {
		return nil, "", fmt.Errorf("parse candidate: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return c.fetchHTTP(ctx, u)
	case "file":
		return readFile(u.Path)
	case "":
		return readFile(candidate)
	default:
		return nil, "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func (c *Client) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, Format, error) {
	format := FormatFromName(u.Path)

	if c.CacheBuster != nil {
		q := u.Query()
		q.Set("v", c.CacheBuster())
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = FormatYAML
	}
	return body, format, nil
}

func readFile(path string) ([]byte, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, maxBodyBytes))
	if err != nil {
		return nil, "", err
	}
	return body, FormatFromName(path), nil
}

// LocalPaths returns the candidates that point at the local filesystem, in
// order. Used to decide what to watch for changes.
func LocalPaths(candidates []string) []string {
	var paths []string
	for _, c := range candidates {
		u, err := url.Parse(c)
		if err != nil {
			continue
		}
		switch u.Scheme {
		case "file":
			paths = append(paths, filepath.Clean(u.Path))
		case "":
			paths = append(paths, filepath.Clean(c))
		}
	}
	return paths
}
