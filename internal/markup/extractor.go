package markup

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"driftlint/internal/types"
	"driftlint/internal/value"
)

var (
	// attrPattern matches flat attribute assignments: identifier="literal".
	attrPattern = regexp.MustCompile(`(\w+)="([^"]+)"`)

	// styleBlockPattern matches a single flat inline style object:
	// style={{ ... }}. Nested braces are out of contract.
	styleBlockPattern = regexp.MustCompile(`style=\{\{([^}]+)\}\}`)

	// stylePropPattern matches identifier: expression pairs inside the
	// style block, delimited by commas or the closing brace.
	stylePropPattern = regexp.MustCompile(`(\w+):\s*([^,}]+)`)
)

// canonicalNames maps css-style property names to the canonical names used
// to align both sides of a comparison. Identity for anything not listed.
var canonicalNames = map[string]string{
	"color":           "textColor",
	"background":      "backgroundColor",
	"backgroundColor": "backgroundColor",
	"fontSize":        "fontSize",
	"fontWeight":      "fontWeight",
	"fontFamily":      "fontFamily",
	"borderRadius":    "borderRadius",
	"padding":         "padding",
	"lineHeight":      "lineHeight",
}

// CanonicalName maps a property name to its canonical form. Both the
// extracted implementation properties and the reference spec's keys go
// through this mapping so the comparator sees aligned keys.
func CanonicalName(name string) string {
	if canonical, ok := canonicalNames[name]; ok {
		return canonical
	}
	return name
}

// Extractor scans JSX-like markup for inline attributes and a flat inline
// style block, producing a property map of normalized descriptors.
type Extractor struct {
	log *zap.Logger
}

// NewExtractor creates a markup extractor.
func NewExtractor(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log.Named("markup")}
}

// Extract scans markup text and returns the extracted property map.
// Attribute assignments are processed first; entries from the style block
// overwrite attributes targeting the same canonical name.
func (e *Extractor) Extract(markup string) types.PropertyMap {
	props := make(types.PropertyMap)

	for _, m := range attrPattern.FindAllStringSubmatch(markup, -1) {
		key, raw := m[1], m[2]
		if key == "style" {
			continue
		}
		props[CanonicalName(key)] = value.Parse(raw)
	}

	if block := styleBlockPattern.FindStringSubmatch(markup); block != nil {
		for _, m := range stylePropPattern.FindAllStringSubmatch(block[1], -1) {
			key := CanonicalName(m[1])
			clean := strings.Trim(strings.TrimSpace(m[2]), `"'`)
			props[key] = value.Parse(clean)
		}
	}

	e.log.Debug("extracted properties", zap.Int("count", len(props)))
	return props
}
