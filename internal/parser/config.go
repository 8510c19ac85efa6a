package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harrison/dataset/internal/models"
)

const (
	commentDelim     = ";"
	includeDirective = "#include"
	openBrace        = "{"
	closeBrace       = "}"

	maxLineSize = 1024 * 1024
)

type state int

const (
	stateAwaitName state = iota
	stateAwaitOpenBrace
	stateAwaitPropertyOrClose
)

// IncludeHandler is notified of "#include" directives. They are never followed
// by this parser; a later stage owns their meaning.
type IncludeHandler func(line string, lineNumber int)

// Parser reads dataset blocks from a config stream one record at a time.
//
// Grammar (line oriented, ";" starts a comment, blank lines are skipped):
//
//	config    := block*
//	block     := name_line "{" prop_line* "}"
//	prop_line := <key> <value>
//
// After the first error the parser keeps returning that error.
type Parser struct {
	scanner   *bufio.Scanner
	source    string
	lineNo    int
	state     state
	builder   *models.RecordBuilder
	onInclude IncludeHandler
	err       error
}

// NewParser creates a parser over r. source is used in error messages and may be empty.
func NewParser(r io.Reader, source string) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Parser{
		scanner: scanner,
		source:  source,
	}
}

// OnInclude registers a handler for "#include" directives.
func (p *Parser) OnInclude(fn IncludeHandler) {
	p.onInclude = fn
}

// Next returns the next record, io.EOF at a clean end of input, or a
// *SyntaxError for a malformed block.
func (p *Parser) Next() (*models.Record, error) {
	if p.err != nil {
		return nil, p.err
	}
	rec, err := p.next()
	if err != nil {
		p.err = err
	}
	return rec, err
}

func (p *Parser) next() (*models.Record, error) {
	for {
		line, ok, err := p.readLogical()
		if err != nil {
			return nil, err
		}

		switch p.state {
		case stateAwaitName:
			if !ok {
				return nil, io.EOF
			}
			if strings.HasPrefix(line, includeDirective) {
				if p.onInclude != nil {
					p.onInclude(line, p.lineNo)
				}
				continue
			}
			p.builder = models.NewRecordBuilder(line).At(p.source, p.lineNo)
			p.state = stateAwaitOpenBrace

		case stateAwaitOpenBrace:
			if !ok || line != openBrace {
				return nil, p.syntaxError(KindExpectedOpenBrace, line, !ok)
			}
			p.state = stateAwaitPropertyOrClose

		case stateAwaitPropertyOrClose:
			if !ok {
				return nil, p.syntaxError(KindInvalidProperty, "", true)
			}
			if line == closeBrace {
				p.state = stateAwaitName
				rec, err := p.builder.Build()
				p.builder = nil
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %w", p.source, p.lineNo, err)
				}
				return rec, nil
			}
			tokens := strings.Fields(line)
			if len(tokens) != 2 {
				return nil, p.syntaxError(KindInvalidProperty, line, false)
			}
			p.builder.Set(tokens[0], tokens[1])
		}
	}
}

// readLogical returns the next non-blank line with its comment removed.
// ok is false at end of input.
func (p *Parser) readLogical() (string, bool, error) {
	for p.scanner.Scan() {
		p.lineNo++
		line := p.scanner.Text()
		if i := strings.Index(line, commentDelim); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return "", false, fmt.Errorf("failed to read config: %w", err)
	}
	return "", false, nil
}

func (p *Parser) syntaxError(kind SyntaxKind, line string, eof bool) *SyntaxError {
	lineNo := p.lineNo
	if eof {
		lineNo = 0
	}
	return &SyntaxError{
		Kind:       kind,
		Source:     p.source,
		LineNumber: lineNo,
		Line:       line,
		EOF:        eof,
	}
}

// All drains the parser and returns every record.
func (p *Parser) All() ([]*models.Record, error) {
	var records []*models.Record
	for {
		rec, err := p.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// ConfigFile is a Parser bound to an open config file.
type ConfigFile struct {
	*Parser
	closer io.Closer
}

// Close releases the underlying file.
func (f *ConfigFile) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// Open opens a config file for lazy parsing.
//
// A path that does not name an existing regular file yields an empty
// ConfigFile together with an error wrapping ErrConfigNotFound, so callers
// can warn and carry on with no records.
func Open(path string) (*ConfigFile, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		empty := &ConfigFile{Parser: NewParser(strings.NewReader(""), path)}
		return empty, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	return &ConfigFile{Parser: NewParser(file, path), closer: file}, nil
}

// ParseFile parses every record of the config at path.
// A missing file returns no records and an error wrapping ErrConfigNotFound.
func ParseFile(path string) ([]*models.Record, error) {
	cfg, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer cfg.Close()
	return cfg.All()
}
