package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow (plain when color is disabled)
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	color.New(color.FgYellow).Fprint(out, b.String())
}

// MissingFiles creates the warning shown when a dataset declares files that do not exist
func MissingFiles(name string, files []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("%s is missing!", name),
		Message:    "Declared files were not found; the dataset was skipped.",
		Files:      files,
		Suggestion: "Fix the paths in the config or mark unused fields as N/A.",
	}
}

// NoSuchFile creates the warning shown when the config file does not exist
func NoSuchFile(path string) Warning {
	return Warning{Title: fmt.Sprintf("no such file: %s", path)}
}

// ArchiveExists creates the warning shown when tar refuses to overwrite an archive
func ArchiveExists(archive string) Warning {
	return Warning{
		Title:      fmt.Sprintf("ATTENTION: %s already exists", archive),
		Suggestion: "Remove or rename the existing archive to rebuild it.",
	}
}
