package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"臺北", "台北"},
		{"台北", "台北"},
		{"臺灣臺中", "台灣台中"},
		{"", ""},
		{"no variants here", "no variants here"},
	}
	for _, tt := range tests {
		if got := Text(tt.input); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{"", "臺", "台", "臺台臺", "abc 臺北 def", "\x00臺\n"}
	for _, s := range inputs {
		once := Text(s)
		if twice := Text(once); twice != once {
			t.Errorf("Text(Text(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestKeywords(t *testing.T) {
	in := []string{"臺南", "高雄"}
	got := Keywords(in)
	if got[0] != "台南" || got[1] != "高雄" {
		t.Errorf("unexpected keywords: %v", got)
	}
	if in[0] != "臺南" {
		t.Error("input slice was modified")
	}
}
