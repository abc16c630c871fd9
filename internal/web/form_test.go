package web

import (
	"testing"
)

func TestFormApply(t *testing.T) {
	f := form{Keywords: []string{"a"}, Fields: 1}
	f.apply("add")
	if f.Fields != 2 || len(f.Keywords) != 2 || f.Keywords[1] != "" {
		t.Errorf("after add: %+v", f)
	}
	f.apply("remove")
	f.apply("remove")
	f.apply("remove")
	if f.Fields != 0 || len(f.Keywords) != 0 {
		t.Errorf("after removes: %+v", f)
	}
}

func TestFormApplyCap(t *testing.T) {
	f := form{Fields: maxKeywordFields}
	f.apply("add")
	if f.Fields != maxKeywordFields {
		t.Errorf("expected cap at %d, got %d", maxKeywordFields, f.Fields)
	}
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		raw      string
		keywords int
		want     int
	}{
		{"", 2, 2},
		{"3", 0, 3},
		{"-1", 1, 1},
		{"x", 0, 0},
		{"999", 0, maxKeywordFields},
	}
	for _, tt := range tests {
		if got := parseFields(tt.raw, tt.keywords); got != tt.want {
			t.Errorf("parseFields(%q, %d) = %d, want %d", tt.raw, tt.keywords, got, tt.want)
		}
	}
}
