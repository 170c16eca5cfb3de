package questionnaire

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// MinOptions is the floor of choice options a radio/checkbox question keeps.
// Removal below this is refused; validation additionally requires this many
// options with non-blank text.
const MinOptions = 2

// IDGenerator mints question ids unique within one editing session. The
// timestamp keeps ids unique across sessions and the counter disambiguates
// ids minted within the same millisecond.
type IDGenerator struct {
	mu      sync.Mutex
	counter int
	now     func() time.Time
}

// NewIDGenerator creates a generator backed by the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns a fresh question id.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("q_%d_%d", g.now().UnixMilli(), g.counter)
}

// NewEmptyQuestion returns the blank question the editor appends: a radio
// question with two empty options.
func NewEmptyQuestion(id string) Question {
	return Question{
		ID:      id,
		Type:    QuestionTypeRadio,
		Options: []string{"", ""},
	}
}

// QuestionPatch carries per-field edits; nil fields are left untouched.
type QuestionPatch struct {
	Title      *string
	Type       *string
	Options    *[]string
	AllowOther *bool
}

// AddQuestion appends a blank question and returns the new slice.
func AddQuestion(questions []Question, gen *IDGenerator) []Question {
	return append(questions, NewEmptyQuestion(gen.Next()))
}

// UpdateQuestion applies patch to the question with the given id and returns
// a new list; the input list and its elements are never written to. Unknown
// ids are ignored.
func UpdateQuestion(questions []Question, id string, patch QuestionPatch) []Question {
	out := append([]Question(nil), questions...)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Title != nil {
			out[i].Title = *patch.Title
		}
		if patch.Type != nil {
			out[i].Type = *patch.Type
		}
		if patch.Options != nil {
			out[i].Options = append([]string(nil), *patch.Options...)
		}
		if patch.AllowOther != nil {
			out[i].AllowOther = *patch.AllowOther
		}
		break
	}
	return out
}

// RemoveQuestion deletes the question with the given id and returns a new
// list, leaving the input untouched. The last remaining question cannot be
// removed; the questionnaire never goes empty through the editor.
func RemoveQuestion(questions []Question, id string) []Question {
	if len(questions) <= 1 {
		return questions
	}
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ID != id {
			out = append(out, q)
		}
	}
	return out
}

// UpdateOption sets the option text at index. Out-of-range indexes are
// ignored.
func UpdateOption(q Question, index int, text string) Question {
	if index < 0 || index >= len(q.Options) {
		return q
	}
	opts := append([]string(nil), q.Options...)
	opts[index] = text
	q.Options = opts
	return q
}

// AddOption appends an empty option.
func AddOption(q Question) Question {
	q.Options = append(append([]string(nil), q.Options...), "")
	return q
}

// RemoveOption deletes the option at index, refusing to drop below the
// MinOptions floor.
func RemoveOption(q Question, index int) Question {
	if len(q.Options) <= MinOptions || index < 0 || index >= len(q.Options) {
		return q
	}
	opts := append([]string(nil), q.Options[:index]...)
	opts = append(opts, q.Options[index+1:]...)
	q.Options = opts
	return q
}

// Validate checks every question and returns errors keyed by question id,
// with option errors under "<id>:options". An empty map means valid.
func Validate(questions []Question) map[string]string {
	errs := map[string]string{}
	for _, q := range questions {
		if strings.TrimSpace(q.Title) == "" {
			errs[q.ID] = "La pregunta no puede estar vacía"
		}
		if !HasOptions(q.Type) {
			continue
		}
		filled := 0
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) != "" {
				filled++
			}
		}
		if filled < MinOptions {
			errs[q.ID+":options"] = "Necesitas al menos 2 opciones con texto"
		}
	}
	return errs
}
