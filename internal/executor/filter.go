package executor

import (
	"fmt"
	"regexp"

	"github.com/harrison/dataset/internal/models"
)

// Filter decides whether a record takes part in a run.
type Filter interface {
	Match(rec *models.Record) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(rec *models.Record) bool

// Match calls f(rec).
func (f FilterFunc) Match(rec *models.Record) bool {
	return f(rec)
}

// AcceptAll returns a Filter that selects every record.
func AcceptAll() Filter {
	return FilterFunc(func(*models.Record) bool { return true })
}

// NameFilter selects records whose name contains a match for pattern.
// The pattern is a regular expression anchored as ^.*<pattern>.*$, so a
// plain word is a substring match. An empty pattern selects everything.
func NameFilter(pattern string) (Filter, error) {
	if pattern == "" {
		return AcceptAll(), nil
	}
	re, err := regexp.Compile("^.*" + pattern + ".*$")
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}
	return FilterFunc(func(rec *models.Record) bool {
		return re.MatchString(rec.Name())
	}), nil
}
