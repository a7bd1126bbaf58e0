package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a team data file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var errNotList = errors.New("team data must be a list of members")

var utf8BOM = []byte("\xef\xbb\xbf")

// FormatFromName picks the format from a file or URL path extension.
// Anything that isn't .yaml or .yml is treated as JSON.
func FormatFromName(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a team data file. YAML is normalised through JSON so both
// formats share the same field names and the same leniency for nmls.
func Decode(body []byte, format Format) ([]domain.Member, error) {
	body = bytes.TrimPrefix(body, utf8BOM)

	if format == FormatYAML {
		var raw any
		if err := yaml.Unmarshal(body, &raw); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		if _, ok := raw.([]any); !ok {
			return nil, errNotList
		}
		b, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		body = b
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, errNotList
	}

	var members []domain.Member
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return members, nil
}
