// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CollectFiles returns path itself when it is a file, or the regular files
// inside it when it is a directory. Subdirectories are only visited when
// recursive is set. Files are returned in lexical order.
func CollectFiles(path string, recursive bool) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNoInput)
		}
		return nil, err
	}

	if !st.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Stem returns the file name of path without directory and extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
