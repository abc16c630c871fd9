package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// MaxKeywordFields caps the number of keyword inputs.
const MaxKeywordFields = 9

// keywordFields is the dynamic list of keyword inputs. Its length is the
// session's keyword field count.
type keywordFields struct {
	inputs []textinput.Model
}

func newKeywordInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "keyword"
	ti.Prompt = inputPromptStyle.Render("› ")
	ti.CharLimit = 50
	ti.Width = 24
	return ti
}

func (k *keywordFields) add() bool {
	if len(k.inputs) >= MaxKeywordFields {
		return false
	}
	k.inputs = append(k.inputs, newKeywordInput())
	return true
}

func (k *keywordFields) remove() bool {
	if len(k.inputs) == 0 {
		return false
	}
	k.inputs = k.inputs[:len(k.inputs)-1]
	return true
}

func (k *keywordFields) count() int {
	return len(k.inputs)
}

// values returns the raw text of every field, blanks included.
func (k *keywordFields) values() []string {
	out := make([]string, len(k.inputs))
	for i, in := range k.inputs {
		out[i] = in.Value()
	}
	return out
}
