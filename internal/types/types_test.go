package types_test

import (
	"encoding/json"
	"testing"

	"driftlint/internal/types"
)

func TestNewSummary(t *testing.T) {
	issues := []types.Issue{
		{Severity: types.SeverityMajor},
		{Severity: types.SeverityMajor},
		{Severity: types.SeverityMinor},
		{Severity: types.SeverityWarning},
	}

	s := types.NewSummary(issues)

	if s.Major != 2 || s.Minor != 1 || s.Warnings != 1 {
		t.Errorf("summary = %+v, want 2/1/1", s)
	}
}

func TestNewSummary_Empty(t *testing.T) {
	s := types.NewSummary(nil)
	if s.Major != 0 || s.Minor != 0 || s.Warnings != 0 {
		t.Errorf("summary = %+v, want zeroes", s)
	}
}

func TestPropertyValue_OmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(types.PropertyValue{Value: "8px"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"value":"8px"}` {
		t.Errorf("json = %s, want only the value field", data)
	}
}
