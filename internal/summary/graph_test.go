package summary

import "testing"

func TestGraphRankPrepare(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  \n\r\n ", ""},
		{"甲。乙。", "甲。乙。"},
		{"甲！乙？\n丙", "甲。乙。丙。"},
		{"甲。。  。乙", "甲。乙。"},
	}
	for _, tt := range tests {
		if got := (GraphRank{}).prepare(tt.input); got != tt.want {
			t.Errorf("prepare(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGraphRankCustomTerminator(t *testing.T) {
	got := GraphRank{Terminator: "."}.prepare("one. two.")
	if got != "one。two。" {
		t.Errorf("prepare = %q", got)
	}
}

func TestGraphRankEmpty(t *testing.T) {
	got, err := GraphRank{}.Summarize("  ", 3)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no sentences, got %v", got)
	}
	if got, _ := (GraphRank{}).Summarize("甲。乙。", 0); len(got) != 0 {
		t.Errorf("expected no sentences for n=0, got %v", got)
	}
}

func TestGraphRankSelectsSourceSentences(t *testing.T) {
	text := "cats like fish。dogs like bones。cats and dogs play together。birds sing in trees。fish swim in the sea。"
	source := map[string]bool{
		"cats like fish": true, "dogs like bones": true, "cats and dogs play together": true,
		"birds sing in trees": true, "fish swim in the sea": true,
	}

	got, err := GraphRank{}.Summarize(text, 2)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("expected 1-2 sentences, got %v", got)
	}
	for _, s := range got {
		if !source[s] {
			t.Errorf("sentence %q is not from the source", s)
		}
	}
}
