package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	w := Warning{
		Title: "Configuration Missing",
	}

	w.Display(&buf)

	output := buf.String()

	if !strings.Contains(output, "⚠️") {
		t.Error("Expected warning emoji ⚠️ in output")
	}
	if !strings.Contains(output, "Warning: Configuration Missing") {
		t.Error("Expected title in output")
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("Expected no ANSI codes when color is disabled")
	}
}

func TestDisplayWarning_ColorEnabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	Warning{Title: "x"}.Display(&buf)

	if !strings.Contains(buf.String(), "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}
}

func TestDisplayWarning_AllFields(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	w := Warning{
		Title:      "Deprecated Feature",
		Message:    "This feature will be removed",
		Files:      []string{"a.fq", "b.fq"},
		Suggestion: "Stop using it",
	}

	w.Display(&buf)
	output := buf.String()

	for _, want := range []string{
		"    This feature will be removed\n",
		"    Affected files:\n",
		"      1. a.fq\n",
		"      2. b.fq\n",
		"    Suggestion:\n    Stop using it\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	Warning{Title: "t", Files: []string{"only.fq"}}.Display(&buf)

	if !strings.Contains(buf.String(), "Affected file:\n") {
		t.Errorf("Expected singular label, got:\n%s", buf.String())
	}
}

func TestMissingFiles(t *testing.T) {
	w := MissingFiles("sample1", []string{"/data/b.fq"})
	if w.Title != "sample1 is missing!" {
		t.Errorf("Title = %q", w.Title)
	}
	if len(w.Files) != 1 || w.Files[0] != "/data/b.fq" {
		t.Errorf("Files = %v", w.Files)
	}
}

func TestNoSuchFile(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	NoSuchFile("/data/ds.conf").Display(&buf)

	if !strings.Contains(buf.String(), "no such file: /data/ds.conf") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestArchiveExists(t *testing.T) {
	w := ArchiveExists("sample1.tar")
	if !strings.Contains(w.Title, "sample1.tar already exists") {
		t.Errorf("Title = %q", w.Title)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"#", "File"},
		[][]string{{"0", "a.fq"}, {"1"}},
		[]Alignment{AlignRight, AlignLeft},
	)

	if !strings.Contains(out, "a.fq") {
		t.Errorf("Expected row content, got:\n%s", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("Expected rounded style, got:\n%s", out)
	}
	if RenderTable(nil, nil, nil) != "" {
		t.Error("Expected empty output without headers")
	}
}
