// internal/inputs/resolve.go
package inputs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ext is the structure-file extension this pipeline accepts.
const Ext = ".pdb"

// Resolve returns the structure files designated by path: the immediate *.pdb
// children of a directory (enumeration order, no recursion), or the file
// itself. Anything else is an error.
func Resolve(path string) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input path %s: %w", path, err)
	}
	if st.IsDir() {
		files, err := filepath.Glob(filepath.Join(path, "*"+Ext))
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		return files, nil
	}
	if filepath.Ext(path) != Ext {
		return nil, fmt.Errorf("invalid input path %s: must be a %s file or a directory", path, Ext)
	}
	return []string{path}, nil
}
