package tokens

import (
	"strconv"
	"strings"

	"driftlint/internal/types"
	"driftlint/internal/value"
)

// Resolve annotates every descriptor in props with its resolved token value
// where the token dictionary has a matching entry. It never compares sides;
// the reference and implementation maps are resolved independently.
func Resolve(props types.PropertyMap, dict types.TokenDictionary) types.PropertyMap {
	resolved := make(types.PropertyMap, len(props))
	for key, pv := range props {
		resolved[key] = annotate(pv, dict)
	}
	return resolved
}

// ResolveRaw normalizes raw reference-spec values (scalars or object
// descriptors straight out of JSON) into PropertyValue descriptors and
// resolves them against the token dictionary.
func ResolveRaw(raw map[string]any, dict types.TokenDictionary) types.PropertyMap {
	props := make(types.PropertyMap, len(raw))
	for key, v := range raw {
		if obj, ok := v.(map[string]any); ok {
			props[key] = fromObject(obj)
			continue
		}
		props[key] = value.Parse(v)
	}
	return Resolve(props, dict)
}

// annotate copies pv and fills in Resolved (and Token, when the plain value
// itself names a dictionary entry). It also backfills Normalized for single
// pixel lengths; the re-check is idempotent.
func annotate(pv types.PropertyValue, dict types.TokenDictionary) types.PropertyValue {
	out := pv

	if v, ok := dict[out.Token]; out.Token != "" && ok {
		out.Resolved = v
	} else if s, isStr := out.Value.(string); isStr {
		if v, ok := dict[s]; ok {
			out.Resolved = v
			out.Token = s
		}
	}

	if s, isStr := out.Value.(string); isStr && out.Normalized == nil {
		if strings.HasSuffix(s, "px") && !strings.Contains(s, " ") {
			if n, err := strconv.Atoi(strings.TrimSuffix(s, "px")); err == nil {
				out.Normalized = &n
			}
		}
	}

	return out
}

// fromObject converts a JSON object descriptor (a reference spec that
// already ships structured values) into a PropertyValue.
func fromObject(obj map[string]any) types.PropertyValue {
	var pv types.PropertyValue
	if t, ok := obj["token"].(string); ok {
		pv.Token = t
	}
	if v, ok := obj["value"]; ok {
		pv.Value = v
	}
	if typ, ok := obj["type"].(string); ok {
		pv.Type = typ
	}
	// JSON numbers decode as float64.
	if f, ok := obj["normalized"].(float64); ok {
		n := int(f)
		pv.Normalized = &n
	}
	if r, ok := obj["resolved"]; ok {
		pv.Resolved = r
	}
	return pv
}
