package syntax

import "testing"

func TestMatchKeywords(t *testing.T) {
	matches := MatchKeywords("if foo then")
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Start != 0 || matches[0].Text != "if" {
		t.Errorf("matches[0] = %+v, want if at 0", matches[0])
	}
	if matches[1].Start != 7 || matches[1].Text != "then" {
		t.Errorf("matches[1] = %+v, want then at 7", matches[1])
	}
}

func TestMatchKeywordsSkipsFoldMarker(t *testing.T) {
	if matches := MatchKeywords("state = #on"); len(matches) != 0 {
		t.Errorf("got %d matches, want 0 for enum constant", len(matches))
	}
}

func TestMatchKeywordsWordBoundary(t *testing.T) {
	// "information" contains IN, FOR and ON as substrings only.
	if matches := MatchKeywords("information"); len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestMatchBuiltInTypes(t *testing.T) {
	matches := MatchBuiltInTypes("decl int counter")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Start != 5 || matches[0].Text != "int" {
		t.Errorf("matches[0] = %+v, want int at 5", matches[0])
	}
}

func TestOpensBlock(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"IF foo THEN", true},
		{"FOR i=1 TO 5", true},
		{"WHILE x < 3", true},
		{"WAIT FOR $IN[1]", false},
		{"WAIT SEC 0.5", false},
		{"PTP home", false},
		{"ELSE", true},
	}
	for _, tt := range tests {
		if got := OpensBlock(tt.code); got != tt.want {
			t.Errorf("OpensBlock(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestClosesBlock(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"ENDIF", true},
		{"ENDFOR", true},
		{"ELSE", true},
		{"UNTIL done", true},
		{"IF foo THEN", false},
		{"PTP home", false},
	}
	for _, tt := range tests {
		if got := ClosesBlock(tt.code); got != tt.want {
			t.Errorf("ClosesBlock(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
