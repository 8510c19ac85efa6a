package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is written for free-text fields the user leaves empty.
const Placeholder = "TODO"

// Question is one prompt of the wizard.
type Question interface {
	// Prompt is the text shown to the user.
	Prompt() string
}

// FileQuestion asks which numbered candidate holds a file field.
type FileQuestion struct {
	Field string
	Count int // number of candidates; valid answers are 0..Count-1
}

// Prompt implements Question.
func (q FileQuestion) Prompt() string {
	return fmt.Sprintf("Which file is %q? (enter number from 0 to %d or press Enter if none)", q.Field, q.Count-1)
}

// Parse converts an answer into a candidate index. ok is false for an empty
// answer, meaning the field is omitted.
func (q FileQuestion) Parse(answer string) (index int, ok bool, err error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, false, fmt.Errorf("%q is not a number", answer)
	}
	if n < 0 || n >= q.Count {
		return 0, false, fmt.Errorf("%d is out of range 0..%d", n, q.Count-1)
	}
	return n, true, nil
}

// TextQuestion asks for a free-text value.
type TextQuestion struct {
	Field   string
	Text    string // prompt text; a default is derived from Field when empty
	Default string // value used when the answer is empty
}

// Prompt implements Question.
func (q TextQuestion) Prompt() string {
	if q.Text != "" {
		return q.Text
	}
	return fmt.Sprintf("Enter %s (or press Enter if you don't know yet)", q.Field)
}

// Resolve returns the trimmed answer, or Default when it is empty.
func (q TextQuestion) Resolve(answer string) string {
	if a := strings.TrimSpace(answer); a != "" {
		return a
	}
	return q.Default
}

// ErrNoAnswers is returned by an AnswerSource that has run out of input.
var ErrNoAnswers = errors.New("no more answers")

// AnswerSource supplies the user's answer to a question.
type AnswerSource interface {
	Ask(q Question) (string, error)
}
