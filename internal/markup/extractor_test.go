package markup_test

import (
	"testing"

	"go.uber.org/zap"

	"driftlint/internal/markup"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"color", "textColor"},
		{"background", "backgroundColor"},
		{"backgroundColor", "backgroundColor"},
		{"borderRadius", "borderRadius"},
		{"lineHeight", "lineHeight"},
		{"alt", "alt"},
		{"anythingElse", "anythingElse"},
	}
	for _, tt := range tests {
		if got := markup.CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtract_Attributes(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<Button size="large" padding="8px" alt="Save changes" />`)

	if got := props["size"].Value; got != "large" {
		t.Errorf("size = %v, want large", got)
	}
	pv, ok := props["padding"]
	if !ok || pv.Normalized == nil || *pv.Normalized != 8 {
		t.Errorf("padding = %+v, want normalized 8", pv)
	}
	if _, ok := props["alt"]; !ok {
		t.Error("alt attribute not extracted")
	}
}

func TestExtract_SkipsStyleAttribute(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<div style="color: red" size="small" />`)

	if _, ok := props["style"]; ok {
		t.Error("style attribute must not be extracted as a property")
	}
	if _, ok := props["size"]; !ok {
		t.Error("size attribute missing")
	}
}

func TestExtract_StyleBlock(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<div style={{ color: "var(--brand-600)", fontSize: '14px', padding: 12 }} />`)

	pv, ok := props["textColor"]
	if !ok {
		t.Fatal("color not mapped to textColor")
	}
	if pv.Token != "brand-600" {
		t.Errorf("textColor token = %q, want brand-600", pv.Token)
	}

	fs, ok := props["fontSize"]
	if !ok || fs.Normalized == nil || *fs.Normalized != 14 {
		t.Errorf("fontSize = %+v, want normalized 14", fs)
	}

	pad, ok := props["padding"]
	if !ok || pad.Normalized == nil || *pad.Normalized != 12 {
		t.Errorf("padding = %+v, want normalized 12", pad)
	}
}

func TestExtract_StyleEntryOverwritesAttribute(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<div padding="8px" style={{ padding: "16px" }} />`)

	pv := props["padding"]
	if pv.Value != "16px" {
		t.Errorf("padding = %v, want style-block value 16px", pv.Value)
	}
}

func TestExtract_AttributeKeysAreCanonicalized(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<span color="var(--brand-600)" />`)

	if _, ok := props["textColor"]; !ok {
		t.Fatal("color attribute not stored under textColor")
	}
	if props["textColor"].Token != "brand-600" {
		t.Errorf("token = %q, want brand-600", props["textColor"].Token)
	}
}

func TestExtract_NoStyleBlock(t *testing.T) {
	e := markup.NewExtractor(zap.NewNop())

	props := e.Extract(`<img src="avatar.png" />`)

	if len(props) != 1 {
		t.Fatalf("got %d properties, want 1: %+v", len(props), props)
	}
}

func TestExtract_Empty(t *testing.T) {
	e := markup.NewExtractor(nil)

	props := e.Extract("")

	if len(props) != 0 {
		t.Errorf("got %d properties from empty markup", len(props))
	}
}
