// Package keyword extracts salient terms from a document.
package keyword

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/idf"
)

// Extractor returns up to k salient terms of text, most salient first.
type Extractor interface {
	Extract(text string, k int) []string
}

// ExtractorFunc adapts a plain function to Extractor.
type ExtractorFunc func(text string, k int) []string

func (f ExtractorFunc) Extract(text string, k int) []string {
	return f(text, k)
}

// TFIDF ranks terms by TF-IDF over a gse word segmentation.
type TFIDF struct {
	tags idf.TagExtracter
}

// NewTFIDF loads the embedded dictionary. idfPath may be empty to use the
// IDF table compiled into gse.
func NewTFIDF(idfPath string) (*TFIDF, error) {
	var seg gse.Segmenter
	seg.SkipLog = true
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("loading segmentation dictionary: %w", err)
	}

	t := &TFIDF{}
	t.tags.WithGse(seg)

	var err error
	if idfPath != "" {
		err = t.tags.LoadIdf(idfPath)
	} else {
		err = t.tags.LoadIdfStr(gse.ZhIdf)
	}
	if err != nil {
		return nil, fmt.Errorf("loading idf table: %w", err)
	}
	return t, nil
}

func (t *TFIDF) Extract(text string, k int) []string {
	if k <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}
	segments := t.tags.ExtractTags(text, k)
	terms := make([]string, 0, len(segments))
	for _, s := range segments {
		if term := strings.TrimSpace(s.Text); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}
