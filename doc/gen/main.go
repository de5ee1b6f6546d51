// Command gen writes doc/keymap.md, the table of host key codes the bridge
// translates and the GUI key each one becomes.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/imbridge"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	outDir := "doc"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	path := filepath.Join(outDir, "keymap.md")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n, err := writeKeymap(w)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}

	fmt.Printf("Generated %d key mappings in %s\n", n, path)
	return nil
}

// writeKeymap writes the markdown table and returns the number of rows.
func writeKeymap(w io.Writer) (int, error) {
	if _, err := fmt.Fprint(w, "# Key map\n\n"+
		"Generated by `go run ./doc/gen/`. Codes not listed translate to `None`.\n\n"+
		"| Code | Host key | GUI key |\n"+
		"|-----:|----------|---------|\n"); err != nil {
		return 0, err
	}

	rows := 0
	for code := imbridge.KeyCodeNone; code <= imbridge.KeyCodeWindowsMenu; code++ {
		key, ok := imbridge.LookupKey(code)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "| %d | %s | %s |\n", int(code), hostKeyLabel(code), key); err != nil {
			return rows, err
		}
		rows++
	}
	return rows, nil
}

// hostKeyLabel names a key code for the table.
func hostKeyLabel(code imbridge.KeyCode) string {
	switch code {
	case imbridge.KeyCodeBack:
		return "Back"
	case imbridge.KeyCodeTab:
		return "Tab"
	case imbridge.KeyCodeReturn:
		return "Return"
	case imbridge.KeyCodeEscape:
		return "Escape"
	case imbridge.KeyCodeSpace:
		return "Space"
	case imbridge.KeyCodeDelete:
		return "Delete"
	case '|':
		return "`\\|`"
	case '`':
		return "`` ` ``"
	}
	if code > imbridge.KeyCodeSpace && code < imbridge.KeyCodeDelete {
		return fmt.Sprintf("`%c`", rune(code))
	}
	return fmt.Sprintf("special+%d", int(code-imbridge.KeyCodeStart))
}
