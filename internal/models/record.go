package models

import "errors"

// Pair is a single key/value line of a dataset block.
type Pair struct {
	Key   string
	Value string
}

// Record is one parsed dataset: its name plus the key/value pairs declared
// between its braces, in declaration order. A Record is immutable once built.
type Record struct {
	name   string
	pairs  []Pair
	index  map[string]int
	source string // config file the record came from (optional)
	line   int    // line number of the name line (optional)
}

// RecordBuilder accumulates fields for a Record. Only the parser builds records.
type RecordBuilder struct {
	rec *Record
}

// NewRecordBuilder starts a record with the given name.
func NewRecordBuilder(name string) *RecordBuilder {
	return &RecordBuilder{rec: &Record{
		name:  name,
		index: make(map[string]int),
	}}
}

// At records where the block started, for diagnostics.
func (b *RecordBuilder) At(source string, line int) *RecordBuilder {
	b.rec.source = source
	b.rec.line = line
	return b
}

// Set declares a field. A repeated key keeps its first position and takes the last value.
func (b *RecordBuilder) Set(key, value string) *RecordBuilder {
	if i, ok := b.rec.index[key]; ok {
		b.rec.pairs[i].Value = value
		return b
	}
	b.rec.index[key] = len(b.rec.pairs)
	b.rec.pairs = append(b.rec.pairs, Pair{Key: key, Value: value})
	return b
}

// Build validates and returns the record. The builder must not be reused.
func (b *RecordBuilder) Build() (*Record, error) {
	rec := b.rec
	b.rec = nil
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// NewRecord is a convenience constructor used by tests and callers that
// already hold the full field list.
func NewRecord(name string, pairs ...Pair) (*Record, error) {
	b := NewRecordBuilder(name)
	for _, p := range pairs {
		b.Set(p.Key, p.Value)
	}
	return b.Build()
}

// Validate checks that the record has a usable name.
func (r *Record) Validate() error {
	if r.name == "" {
		return errors.New("dataset name is required")
	}
	return nil
}

// Name returns the dataset identifier.
func (r *Record) Name() string {
	return r.name
}

// Source returns the config file and line the record was parsed from, if known.
func (r *Record) Source() (string, int) {
	return r.source, r.line
}

// Get returns the raw value of key. The name is reachable as "name".
func (r *Record) Get(key string) (string, bool) {
	if key == FieldName {
		return r.name, true
	}
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.pairs[i].Value, true
}

// Field returns the classified value of key.
func (r *Record) Field(key string) FieldValue {
	raw, _ := r.Get(key)
	return ParseFieldValue(raw)
}

// Len returns the number of declared properties (name excluded).
func (r *Record) Len() int {
	return len(r.pairs)
}

// Keys returns the declared property keys in declaration order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the declared properties in declaration order.
func (r *Record) Pairs() []Pair {
	out := make([]Pair, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// Map returns the full field mapping, name included.
func (r *Record) Map() map[string]string {
	m := make(map[string]string, len(r.pairs)+1)
	for _, p := range r.pairs {
		m[p.Key] = p.Value
	}
	// the block's name line wins over a stray "name" property
	m[FieldName] = r.name
	return m
}

// DeclaredFiles returns the concrete paths of files-class fields, in Files() order.
// N/A and absent fields are skipped.
func (r *Record) DeclaredFiles() []string {
	var paths []string
	for _, key := range Files() {
		if v := r.Field(key); v.IsPresent() {
			paths = append(paths, v.Value)
		}
	}
	return paths
}

// UnknownKeys returns declared keys outside the vocabulary.
func (r *Record) UnknownKeys() []string {
	var out []string
	for _, p := range r.pairs {
		if !IsKnownField(p.Key) {
			out = append(out, p.Key)
		}
	}
	return out
}
