package models

// FieldClass groups the fields of the dataset vocabulary by how operations treat them.
type FieldClass int

const (
	// ClassUnknown marks keys outside the fixed vocabulary; they are stored but ignored.
	ClassUnknown FieldClass = iota
	// ClassReadFile marks sequencing read files (paired, single, jumping libraries).
	ClassReadFile
	// ClassReference marks the reference genome path.
	ClassReference
	// ClassMisc marks free-form metadata that is never a path.
	ClassMisc
)

// String returns the string representation of FieldClass
func (c FieldClass) String() string {
	switch c {
	case ClassReadFile:
		return "read-file"
	case ClassReference:
		return "reference"
	case ClassMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// FieldName is the mandatory identifier key of every record.
const FieldName = "name"

// NotApplicable is the sentinel value meaning "this field does not apply".
// It is compared case-insensitively.
const NotApplicable = "N/A"

var (
	// ReadFileFields lists the read-file fields in declaration order.
	ReadFileFields = []string{
		"first",
		"second",
		"single_first",
		"single_second",
		"jumping_first",
		"jumping_second",
		"single_jumping_first",
		"single_jumping_second",
	}

	// ReferenceFields lists the reference fields in declaration order.
	ReferenceFields = []string{"reference_genome"}

	// MiscFields lists metadata fields that are never interpreted as paths.
	MiscFields = []string{"RL", "IS", "jump_is", "single_cell"}
)

// Files returns the files-class fields (read-file then reference) in declaration order.
func Files() []string {
	out := make([]string, 0, len(ReadFileFields)+len(ReferenceFields))
	out = append(out, ReadFileFields...)
	return append(out, ReferenceFields...)
}

// Props returns every field a record may legitimately carry: Files followed by MiscFields.
func Props() []string {
	return append(Files(), MiscFields...)
}

// ClassOf reports the class of a field name.
func ClassOf(key string) FieldClass {
	for _, f := range ReadFileFields {
		if f == key {
			return ClassReadFile
		}
	}
	for _, f := range ReferenceFields {
		if f == key {
			return ClassReference
		}
	}
	for _, f := range MiscFields {
		if f == key {
			return ClassMisc
		}
	}
	return ClassUnknown
}

// IsFileField returns true if the key holds a file-system path.
func IsFileField(key string) bool {
	c := ClassOf(key)
	return c == ClassReadFile || c == ClassReference
}

// IsKnownField returns true if the key belongs to the fixed vocabulary (name included).
func IsKnownField(key string) bool {
	return key == FieldName || ClassOf(key) != ClassUnknown
}
