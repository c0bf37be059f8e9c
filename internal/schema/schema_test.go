package schema_test

import (
	"testing"

	"driftlint/internal/schema"
)

func TestValidateReferenceSpec(t *testing.T) {
	spec, err := schema.ValidateReferenceSpec([]byte(`{
		"component": "Button",
		"variant": "primary",
		"props": {"padding": "8px", "imageAltRequired": true}
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Component != "Button" || spec.Variant != "primary" {
		t.Errorf("spec = %+v", spec)
	}
	if len(spec.Props) != 2 {
		t.Errorf("props = %+v, want 2 entries", spec.Props)
	}
}

func TestValidateReferenceSpec_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"invalid json", `{"props": `},
		{"missing props", `{"component": "Button"}`},
		{"props not an object", `{"props": ["padding"]}`},
		{"top level not an object", `[1, 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := schema.ValidateReferenceSpec([]byte(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateTokens(t *testing.T) {
	dict, err := schema.ValidateTokens([]byte(`{"brand-500": "#3B82F6", "radius-lg": 12}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dict["brand-500"] != "#3B82F6" {
		t.Errorf("brand-500 = %v", dict["brand-500"])
	}
	if dict["radius-lg"] != float64(12) {
		t.Errorf("radius-lg = %v", dict["radius-lg"])
	}
}

func TestValidateTokens_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"invalid json", `{"a": }`},
		{"nested object value", `{"brand": {"500": "#3B82F6"}}`},
		{"boolean value", `{"flag": true}`},
		{"top level array", `["brand-500"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := schema.ValidateTokens([]byte(tt.in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
