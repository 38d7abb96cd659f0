// Package rules holds the static ignore list applied to parsed bank rows.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultIgnoredTypes are skipped when the rules file does not name any.
// Standing orders are planned separately as fixed costs.
var DefaultIgnoredTypes = []string{"Dauerauftrag"}

// Rules lists the bank rows to drop before import.
type Rules struct {
	// IgnoredRecipients are matched as prefixes of the row details.
	IgnoredRecipients []string `yaml:"ignored_recipients"`
	// IgnoredTypes are matched exactly against the row type.
	IgnoredTypes []string `yaml:"ignored_types"`
}

// Default returns rules that only skip standing orders.
func Default() Rules {
	return Rules{IgnoredTypes: append([]string(nil), DefaultIgnoredTypes...)}
}

// Load reads rules from a YAML file. A missing file yields Default().
func Load(path string) (Rules, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Rules{}, fmt.Errorf("read import rules %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes rules from YAML bytes.
func Parse(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("decode import rules: %w", err)
	}
	if len(r.IgnoredTypes) == 0 {
		r.IgnoredTypes = append([]string(nil), DefaultIgnoredTypes...)
	}
	return r, nil
}

// Ignore reports whether a row with the given type and details is excluded.
func (r Rules) Ignore(rowType, details string) bool {
	rowType = strings.TrimSpace(rowType)
	for _, t := range r.IgnoredTypes {
		if rowType == t {
			return true
		}
	}
	details = strings.TrimSpace(details)
	for _, name := range r.IgnoredRecipients {
		if name != "" && strings.HasPrefix(details, name) {
			return true
		}
	}
	return false
}
