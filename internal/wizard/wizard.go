// Package wizard builds a new dataset block by asking which of the files
// matching a prefix fill each field. It only prints the block; it never
// edits a config file.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/dataset/internal/display"
	"github.com/harrison/dataset/internal/fileutil"
)

// FieldKind says how a field is asked for.
type FieldKind int

const (
	// TextField is answered with free text.
	TextField FieldKind = iota
	// FileField is answered with the index of a candidate file.
	FileField
)

// FieldSpec is one field the wizard asks about, in asking order.
type FieldSpec struct {
	Key  string
	Kind FieldKind
}

// Field is one answered key/value pair.
type Field struct {
	Key   string
	Value string
}

// Lister finds candidate files and shows the final directory listing.
type Lister interface {
	Candidates(prefix string) ([]fileutil.Candidate, error)
	Listing(ctx context.Context, dir string) (string, error)
}

// Result is what one wizard run produced.
type Result struct {
	Name    string
	Fields  []Field
	WorkDir string
}

// Wizard walks the user through building one dataset block.
type Wizard struct {
	lister        Lister
	answers       AnswerSource
	out           io.Writer
	fields        []FieldSpec
	workdirPrefix string
	baseDir       string
	now           func() time.Time
	preflight     func() error
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithWorkdirPrefix sets the prefix of the dated working directory (default "bh").
func WithWorkdirPrefix(prefix string) Option {
	return func(w *Wizard) {
		if prefix != "" {
			w.workdirPrefix = prefix
		}
	}
}

// WithBaseDir sets where the working directory is created and listed (default ".").
func WithBaseDir(dir string) Option {
	return func(w *Wizard) {
		if dir != "" {
			w.baseDir = dir
		}
	}
}

// WithClock overrides the date used for the working directory name.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithPreflight runs check once candidates were found, before any question.
// Nothing is checked when no file matches, so that case stays a silent no-op.
func WithPreflight(check func() error) Option {
	return func(w *Wizard) {
		w.preflight = check
	}
}

// New creates a Wizard asking about fields in the given order.
func New(lister Lister, answers AnswerSource, out io.Writer, fields []FieldSpec, opts ...Option) *Wizard {
	w := &Wizard{
		lister:        lister,
		answers:       answers,
		out:           out,
		fields:        fields,
		workdirPrefix: "bh",
		baseDir:       ".",
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run lists the files matching prefix, asks for every field, prints the
// block, creates the working directory and shows a listing.
// No matching file is not an error: Run returns (nil, nil) without asking anything.
func (w *Wizard) Run(ctx context.Context, prefix string) (*Result, error) {
	candidates, err := w.lister.Candidates(prefix)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	if w.preflight != nil {
		if err := w.preflight(); err != nil {
			return nil, err
		}
	}

	w.showCandidates(candidates)

	name, err := w.askName(prefix)
	if err != nil {
		return nil, err
	}

	fields, err := w.collect(candidates)
	if err != nil {
		return nil, err
	}

	fmt.Fprint(w.out, FormatBlock(name, fields))

	dir, err := w.makeWorkDir()
	if err != nil {
		return nil, err
	}

	listing, err := w.lister.Listing(ctx, w.baseDir)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(w.out, listing)

	return &Result{Name: name, Fields: fields, WorkDir: dir}, nil
}

func (w *Wizard) showCandidates(candidates []fileutil.Candidate) {
	rows := make([][]string, len(candidates))
	for i, c := range candidates {
		rows[i] = []string{strconv.Itoa(i), c.Name(), humanize.IBytes(uint64(c.Size))}
	}
	fmt.Fprintln(w.out, display.RenderTable(
		[]string{"#", "File", "Size"},
		rows,
		[]display.Alignment{display.AlignRight, display.AlignLeft, display.AlignRight},
	))
}

func (w *Wizard) askName(prefix string) (string, error) {
	def := defaultName(prefix)
	text := "Enter dataset name"
	if def != "" {
		text = fmt.Sprintf("Enter dataset name (press Enter for %q)", def)
	}
	q := TextQuestion{Field: "name", Text: text, Default: def}

	for {
		answer, err := w.answers.Ask(q)
		if err != nil {
			return "", err
		}
		name := q.Resolve(answer)
		if err := checkToken(name); err != nil {
			w.reject(err)
			continue
		}
		if name == "{" || name == "}" || strings.HasPrefix(name, "#include") {
			w.reject(fmt.Errorf("%q cannot be used as a dataset name", name))
			continue
		}
		return name, nil
	}
}

func (w *Wizard) collect(candidates []fileutil.Candidate) ([]Field, error) {
	var fields []Field
	for _, spec := range w.fields {
		var (
			value string
			ok    bool
			err   error
		)
		if spec.Kind == FileField {
			value, ok, err = w.askFile(spec.Key, candidates)
		} else {
			value, ok, err = w.askText(spec.Key)
		}
		if err != nil {
			return nil, err
		}
		if ok {
			fields = append(fields, Field{Key: spec.Key, Value: value})
		}
	}
	return fields, nil
}

func (w *Wizard) askFile(field string, candidates []fileutil.Candidate) (string, bool, error) {
	q := FileQuestion{Field: field, Count: len(candidates)}
	for {
		answer, err := w.answers.Ask(q)
		if err != nil {
			return "", false, err
		}
		idx, ok, err := q.Parse(answer)
		if err != nil {
			w.reject(err)
			continue
		}
		if !ok {
			return "", false, nil
		}

		path := candidates[idx].Path
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if err := checkToken(path); err != nil {
			w.reject(err)
			continue
		}
		return path, true, nil
	}
}

func (w *Wizard) askText(field string) (string, bool, error) {
	q := TextQuestion{Field: field, Default: Placeholder}
	for {
		answer, err := w.answers.Ask(q)
		if err != nil {
			return "", false, err
		}
		value := q.Resolve(answer)
		if err := checkToken(value); err != nil {
			w.reject(err)
			continue
		}
		return value, true, nil
	}
}

// makeWorkDir creates <prefix><YYYYMMDD> under the base directory, asking
// for another name while the chosen one already exists.
func (w *Wizard) makeWorkDir() (string, error) {
	name := w.workdirPrefix + w.now().Format("20060102")
	for {
		path := filepath.Join(w.baseDir, name)
		_, err := os.Lstat(path)
		if errors.Is(err, os.ErrNotExist) {
			if err := os.Mkdir(path, 0755); err != nil {
				return "", fmt.Errorf("failed to create working directory: %w", err)
			}
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}

		answer, err := w.answers.Ask(TextQuestion{
			Field: "directory",
			Text:  fmt.Sprintf("%s already exists! Please enter another directory name:", name),
		})
		if err != nil {
			return "", err
		}
		next := strings.TrimSpace(answer)
		if next == "" {
			continue
		}
		name = next
	}
}

func (w *Wizard) reject(err error) {
	color.New(color.FgRed).Fprintf(w.out, "invalid answer: %v\n", err)
}

// checkToken rejects values the config grammar cannot carry: a value must be
// a single whitespace-free token without the comment character.
func checkToken(s string) error {
	switch {
	case s == "":
		return errors.New("value cannot be empty")
	case strings.ContainsAny(s, " \t\r\n"):
		return fmt.Errorf("%q contains whitespace", s)
	case strings.Contains(s, ";"):
		return fmt.Errorf("%q contains ';'", s)
	}
	return nil
}

// defaultName derives a dataset name from the scanned prefix:
// "/data/run42_" becomes "run42".
func defaultName(prefix string) string {
	if prefix == "" {
		return ""
	}
	base := strings.TrimRight(filepath.Base(prefix), "._-")
	if base == "" || base == string(filepath.Separator) || checkToken(base) != nil {
		return ""
	}
	return base
}

// FormatBlock renders a dataset block in the config grammar.
func FormatBlock(name string, fields []Field) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("\n{\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "\t%s\t%s\n", f.Key, f.Value)
	}
	b.WriteString("}\n")
	return b.String()
}
