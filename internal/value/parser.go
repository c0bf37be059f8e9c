package value

import (
	"regexp"
	"strconv"
	"strings"

	"driftlint/internal/types"
)

// cssVarPattern matches CSS variable references such as var(--brand-500)
// or var(--color-brand-500); the optional color- prefix is stripped.
var cssVarPattern = regexp.MustCompile(`var\(--(?:color-)?([^)]+)\)`)

// Parse classifies a raw property value and returns its normalized
// descriptor. It is a pure function: classification failures degrade to a
// plain value descriptor, they never error.
//
// Classification order (first match wins):
//  1. CSS variable reference -> token
//  2. pixel length -> value plus normalized magnitude (single lengths only)
//  3. percentage -> value tagged "percentage"
//  4. digit string -> value plus normalized magnitude
//  5. hyphenated identifier -> token-like value
//  6. anything else -> value pass-through
func Parse(v any) types.PropertyValue {
	s, ok := v.(string)
	if !ok {
		return types.PropertyValue{Value: v}
	}

	if m := cssVarPattern.FindStringSubmatch(s); m != nil {
		return types.PropertyValue{Token: m[1], Value: m[1]}
	}

	if strings.HasSuffix(s, "px") {
		// Compound shorthand like "8px 12px" keeps the raw value only.
		if strings.Contains(s, " ") {
			return types.PropertyValue{Value: s}
		}
		n, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
		if err != nil {
			return types.PropertyValue{Value: s}
		}
		return types.PropertyValue{Value: s, Normalized: &n}
	}

	if strings.HasSuffix(s, "%") {
		return types.PropertyValue{Value: s, Type: "percentage"}
	}

	if isDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return types.PropertyValue{Value: s}
		}
		return types.PropertyValue{Value: s, Normalized: &n}
	}

	if strings.Contains(s, "-") && !strings.HasPrefix(s, "var(") {
		return types.PropertyValue{Token: s, Value: s}
	}

	return types.PropertyValue{Value: s}
}

// isDigits reports whether s is non-empty and consists only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
