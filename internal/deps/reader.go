package deps

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crate-setup/internal/logger"
)

// ReadFile reads a dependencies file into an ordered slice of declarations.
// A missing file is a normal state, not an error: it yields an empty slice.
// Lines that parse to nothing (blank, comments, unrecognizable input) are
// dropped; surviving declarations keep their file order. Duplicate names are
// NOT deduplicated here; the merge step's already-present check decides
// which occurrence survives.
func ReadFile(path string) ([]Declaration, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Error("[error] Failed to close %s: %v\n", path, cerr)
		}
	}()

	var decls []Declaration
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if d, ok := ParseLine(scanner.Text()); ok {
			decls = append(decls, d)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger.Debug("[debug] Parsed %d declaration(s) from %s\n", len(decls), path)
	return decls, nil
}

// Discover resolves where the dependencies file should be read from:
// the project directory first, then the working directory. The working
// directory path is returned even when the file exists in neither place,
// so callers can name the expected location in their messages; ReadFile
// treats the missing file as zero declarations.
func Discover(filename, projectDir, workDir string) string {
	p := filepath.Join(projectDir, filename)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return filepath.Join(workDir, filename)
}
