package categories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/jakoblorz/go-portfolio/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// DefaultDir is the directory category tables are read from, relative to the build root
const DefaultDir = "categories"

// Resource names of the three category tables
const (
	PlatformsResource  = "platforms"
	FrameworksResource = "frameworks"
	SkillsResource     = "tech_skills"
)

// extensions are tried in order for each resource
var extensions = []string{".json", ".yaml", ".yml"}

// Table maps a topic tag to its display name
type Table map[string]string

// Lookup returns the display name for a tag
func (t Table) Lookup(tag string) (string, bool) {
	name, ok := t[tag]
	return name, ok
}

// Set bundles the platform, framework and skill tables of a build.
// A Set is read-only once loaded.
type Set struct {
	Platforms  Table
	Frameworks Table
	Skills     Table
}

// ConfigError reports a category resource that is missing or malformed
type ConfigError struct {
	Resource string
	Path     string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("category resource %q: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("category resource %q (%s): %v", e.Resource, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Loader reads category tables from a directory
type Loader struct {
	fs  filesystem.FileSystem
	dir string
}

// NewLoader creates a Loader reading from dir. An empty dir means DefaultDir.
func NewLoader(fs filesystem.FileSystem, dir string) *Loader {
	if dir == "" {
		dir = DefaultDir
	}
	return &Loader{fs: fs, dir: dir}
}

// Dir returns the directory the loader reads from
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads all three tables. It fails on the first missing or malformed resource.
func (l *Loader) Load() (*Set, error) {
	platforms, err := l.LoadTable(PlatformsResource)
	if err != nil {
		return nil, err
	}
	frameworks, err := l.LoadTable(FrameworksResource)
	if err != nil {
		return nil, err
	}
	skills, err := l.LoadTable(SkillsResource)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded category tables",
		"dir", l.dir,
		"platforms", len(platforms),
		"frameworks", len(frameworks),
		"skills", len(skills))

	return &Set{
		Platforms:  platforms,
		Frameworks: frameworks,
		Skills:     skills,
	}, nil
}

// LoadTable reads a single named resource
func (l *Loader) LoadTable(resource string) (Table, error) {
	path, err := l.findResource(resource)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Resource: resource, Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	table, err := parseTable(path, data)
	if err != nil {
		return nil, &ConfigError{Resource: resource, Path: path, Err: err}
	}
	return table, nil
}

func (l *Loader) findResource(resource string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(l.dir, resource+ext)
		if l.fs.Exists(path) {
			return path, nil
		}
	}
	return "", &ConfigError{
		Resource: resource,
		Err:      fmt.Errorf("no %s.json, %s.yaml or %s.yml in %s: %w", resource, resource, resource, l.dir, fs.ErrNotExist),
	}
}

// ErrMalformedTable is wrapped by ConfigErrors for resources that do not parse as a flat mapping
var ErrMalformedTable = errors.New("must be a flat mapping of strings to strings")

func parseTable(path string, data []byte) (Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty file: %w", ErrMalformedTable)
	}

	switch filepath.Ext(path) {
	case ".json":
		return parseJSONTable(data)
	default:
		return parseYAMLTable(data)
	}
}

func parseJSONTable(data []byte) (Table, error) {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON (%v): %w", err, ErrMalformedTable)
	}
	if raw == nil {
		return nil, fmt.Errorf("null document: %w", ErrMalformedTable)
	}

	table := make(Table, len(raw))
	for tag, name := range raw {
		if name == nil {
			return nil, fmt.Errorf("tag %q has a null display name: %w", tag, ErrMalformedTable)
		}
		table[tag] = *name
	}
	return table, nil
}

func parseYAMLTable(data []byte) (Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML (%v): %w", err, ErrMalformedTable)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document: %w", ErrMalformedTable)
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil, fmt.Errorf("null document: %w", ErrMalformedTable)
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping: %w", root.Line, ErrMalformedTable)
	}

	table := make(Table, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.ShortTag() == "!!null" {
			return nil, fmt.Errorf("line %d: tags must be plain keys: %w", key.Line, ErrMalformedTable)
		}
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			return nil, fmt.Errorf("line %d: tag %q must map to a string: %w", value.Line, key.Value, ErrMalformedTable)
		}
		table[key.Value] = value.Value
	}
	return table, nil
}
