package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// LineReader defines interface for reading user input (for testing)
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// ConsoleAnswers prompts on out and reads one line per question from in.
type ConsoleAnswers struct {
	reader LineReader
	out    io.Writer
}

// NewConsoleAnswers creates an AnswerSource reading from in.
func NewConsoleAnswers(in io.Reader, out io.Writer) *ConsoleAnswers {
	return &ConsoleAnswers{reader: bufio.NewReader(in), out: out}
}

// NewConsoleAnswersWithReader allows injection of reader for testing
func NewConsoleAnswersWithReader(reader LineReader, out io.Writer) *ConsoleAnswers {
	return &ConsoleAnswers{reader: reader, out: out}
}

// Ask prints the prompt in cyan and returns the line typed by the user.
// End of input with nothing typed returns ErrNoAnswers.
func (c *ConsoleAnswers) Ask(q Question) (string, error) {
	color.New(color.FgCyan).Fprintln(c.out, q.Prompt())

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoAnswers
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ScriptedAnswers replays a fixed list of answers and records the questions asked.
type ScriptedAnswers struct {
	answers []string
	asked   []Question
}

// NewScriptedAnswers creates an AnswerSource that returns answers in order.
func NewScriptedAnswers(answers ...string) *ScriptedAnswers {
	return &ScriptedAnswers{answers: answers}
}

// Ask returns the next scripted answer, or ErrNoAnswers once exhausted.
func (s *ScriptedAnswers) Ask(q Question) (string, error) {
	s.asked = append(s.asked, q)
	if len(s.answers) == 0 {
		return "", ErrNoAnswers
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// Asked returns the questions asked so far.
func (s *ScriptedAnswers) Asked() []Question {
	return s.asked
}
