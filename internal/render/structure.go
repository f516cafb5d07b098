package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Structure builds an indented Markdown tree of the directory hierarchy under
// root. Hidden entries are skipped; directories are bolded with a trailing
// slash.
func Structure(root string) (string, error) {
	var b strings.Builder
	b.WriteString("# Project Structure\n\n")

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		if rel == "." {
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		indent := strings.Repeat("  ", strings.Count(rel, string(os.PathSeparator)))
		if info.IsDir() {
			fmt.Fprintf(&b, "%s- **%s/**\n", indent, info.Name())
		} else {
			fmt.Fprintf(&b, "%s- %s\n", indent, info.Name())
		}
		return nil
	})
	return b.String(), err
}
