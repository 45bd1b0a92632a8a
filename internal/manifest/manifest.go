package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"crate-setup/internal/deps"
	"crate-setup/internal/logger"
)

// DefaultVersion is the package.version written when a manifest has to be
// synthesized from scratch.
const DefaultVersion = "0.1.0"

// Wildcard is the version requirement written for declarations that carry
// no version, meaning "accept any version".
const Wildcard = "*"

// Merge loads the Cargo.toml at path and inserts every declaration whose
// name is not already present under [dependencies]. Existing entries are
// authoritative: they are never modified or removed, so a declaration that
// collides with one (or with an earlier declaration from the same run) is
// skipped. It returns the names that were inserted, in insertion order.
//
// When the manifest file does not exist, a minimal document is synthesized
// with package.name taken from the containing directory and package.version
// set to DefaultVersion.
//
// The document is decoded into a generic map so sections this tool knows
// nothing about (profiles, features, workspace config) survive the merge;
// formatting and key order may drift since the whole document is re-encoded.
// The file is only rewritten when at least one entry was inserted; a run
// with nothing to add leaves the on-disk bytes untouched.
//
// A manifest that exists but cannot be parsed is returned as an error
// unchanged on disk; guessing at a repair could destroy the user's project
// configuration.
func Merge(path string, decls []deps.Declaration) ([]string, error) {
	doc := map[string]any{}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := toml.Unmarshal(raw, &doc); uerr != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, uerr)
		}
	case errors.Is(err, os.ErrNotExist):
		logger.Debug("[debug] Manifest %s not found, synthesizing a default document\n", path)
		doc["package"] = map[string]any{
			"name":    filepath.Base(filepath.Dir(path)),
			"version": DefaultVersion,
		}
	default:
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	table, err := dependenciesTable(doc)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, d := range decls {
		if _, exists := table[d.Name]; exists {
			// Already declared, whether by the manifest itself or by an
			// earlier line in this run. First occurrence wins.
			continue
		}
		if v := deps.StripQuotes(d.Version); v != "" {
			table[d.Name] = v
		} else {
			table[d.Name] = Wildcard
		}
		added = append(added, d.Name)
	}

	if len(added) == 0 {
		return nil, nil
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	logger.Debug("[debug] Wrote manifest %s with %d new dependency(ies)\n", path, len(added))
	return added, nil
}

// dependenciesTable returns the [dependencies] table of the document,
// creating an empty one when the section is absent.
func dependenciesTable(doc map[string]any) (map[string]any, error) {
	raw, ok := doc["dependencies"]
	if !ok {
		table := map[string]any{}
		doc["dependencies"] = table
		return table, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest section [dependencies] is not a table (got %T)", raw)
	}
	return table, nil
}
