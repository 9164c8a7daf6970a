package rules

import (
	"encoding/json"
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryConvention, "convention"},
		{CategoryRefactor, "refactor"},
		{CategoryWarning, "warning"},
		{CategoryError, "error"},
		{CategoryFatal, "fatal"},
		{Category(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", int(tt.category), got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, category := range Categories {
		parsed, err := ParseCategory(category.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", category.String(), err)
		}
		if parsed != category {
			t.Errorf("ParseCategory(%q) = %v, want %v", category.String(), parsed, category)
		}
	}

	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("ParseCategory(bogus) should fail")
	}

	parsed, err := ParseCategory("WARN")
	if err != nil || parsed != CategoryWarning {
		t.Errorf("ParseCategory(WARN) = %v, %v, want warning", parsed, err)
	}
}

func TestCategoryJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(CategoryWarning)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"warning"` {
		t.Errorf("marshal = %s, want %q", data, `"warning"`)
	}

	var category Category
	if err := json.Unmarshal(data, &category); err != nil {
		t.Fatal(err)
	}
	if category != CategoryWarning {
		t.Errorf("unmarshal = %v, want warning", category)
	}
}

func TestCategoryIsAtLeast(t *testing.T) {
	if !CategoryError.IsAtLeast(CategoryWarning) {
		t.Error("error should be at least warning")
	}
	if CategoryConvention.IsAtLeast(CategoryWarning) {
		t.Error("convention should not be at least warning")
	}
}
