// Package display provides terminal formatting for user-facing diagnostics.
//
// # Warning Messages
//
// Per-dataset problems (missing files, refused archives) are shown as
// warnings with optional components:
//
//	display.MissingFiles("sample1", []string{"/data/b.fq"}).Display(os.Stdout)
//
// Warnings are yellow when color output is enabled and plain text otherwise
// (fatih/color honours NO_COLOR and non-terminal output).
//
// # Tables
//
// RenderTable draws a rounded table, used by the discovery wizard to list
// candidate files:
//
//	fmt.Println(display.RenderTable(
//	    []string{"#", "File", "Size"},
//	    rows,
//	    []display.Alignment{display.AlignRight, display.AlignLeft, display.AlignRight},
//	))
package display
