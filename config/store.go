// Package config holds the nested, read-mostly configuration store the
// container exposes, plus helpers that assemble it from YAML files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Separator splits configuration paths into segments: "database.url".
const Separator = "."

// NotFoundError is returned when a path has no value and the caller
// supplied no default.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config: no value at [%s]", e.Path)
}

// Store is a nested key/value tree with dotted-path access. It is populated
// once at startup and treated as read-only afterwards: unsynchronized
// concurrent reads are safe as long as no Load runs concurrently with them.
type Store struct {
	tree map[string]any
}

// New creates an empty store.
func New() *Store {
	return &Store{tree: map[string]any{}}
}

// ── Loading ──────────────────────────────────────────────────────────────────

// Load replaces the store's contents with source. There are no partial-merge
// semantics: a fresh load fully replaces prior content.
func (s *Store) Load(source map[string]any) {
	if source == nil {
		source = map[string]any{}
	}
	s.tree = source
}

// LoadYAML parses data as YAML and replaces the store's contents.
func (s *Store) LoadYAML(data []byte) error {
	tree := map[string]any{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	s.Load(tree)
	return nil
}

// LoadFile reads path as a YAML file and replaces the store's contents.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.LoadYAML(data)
}

// ── Lookup ───────────────────────────────────────────────────────────────────

// Get walks the tree segment by segment and returns the leaf value. Every
// segment must exist as a key at its level — lookups never partially match.
// A miss returns *NotFoundError.
func (s *Store) Get(path string) (any, error) {
	var cur any = s.tree
	for _, seg := range strings.Split(path, Separator) {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, &NotFoundError{Path: path}
		}
		cur, ok = node[seg]
		if !ok {
			return nil, &NotFoundError{Path: path}
		}
	}
	return cur, nil
}

// GetDefault is Get with a fallback: a miss returns def unchanged.
func (s *Store) GetDefault(path string, def any) any {
	v, err := s.Get(path)
	if err != nil {
		return def
	}
	return v
}

// Has reports whether the full path resolves to a value.
func (s *Store) Has(path string) bool {
	_, err := s.Get(path)
	return err == nil
}

// ── Typed narrowing ──────────────────────────────────────────────────────────

// String returns the value at path as a string, or def on a miss or type
// mismatch.
func (s *Store) String(path, def string) string {
	v, err := s.Get(path)
	if err != nil {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return def
}

// Int returns the value at path as an int, converting the numeric and
// string forms YAML and the environment produce.
func (s *Store) Int(path string, def int) int {
	v, err := s.Get(path)
	if err != nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return def
}

// Bool returns the value at path as a bool.
func (s *Store) Bool(path string, def bool) bool {
	v, err := s.Get(path)
	if err != nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}
	return def
}
