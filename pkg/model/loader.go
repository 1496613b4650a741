package model

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds model definitions loaded from disk. Records handed out by the
// store are fresh copies so callers can set values and errors freely.
type Store struct {
	models map[string]Definition
}

// Definition describes one model: its ordered columns and default values.
type Definition struct {
	Name    string
	Source  string
	Columns []Column
	Values  map[string]any
}

type documentFile struct {
	Models map[string]modelFile `json:"models" yaml:"models"`
}

type modelFile struct {
	Columns []columnFile   `json:"columns" yaml:"columns"`
	Values  map[string]any `json:"values" yaml:"values"`
}

type columnFile struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

// LoadFS walks fsys and parses every JSON/YAML model definition file. A nil
// filesystem yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{models: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("model: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Models {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("model: file %s defines an empty model name", path)
			}
			if existing, exists := store.models[name]; exists {
				return fmt.Errorf("model: duplicate model %q (files %s and %s)", name, existing.Source, path)
			}
			def, err := normaliseDefinition(name, path, raw)
			if err != nil {
				return err
			}
			store.models[name] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Definition returns the named model definition.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.models[strings.TrimSpace(name)]
	return def, ok
}

// Record builds a fresh Record for the named model, seeded with its default
// values.
func (s *Store) Record(name string) (*Record, bool) {
	def, ok := s.Definition(name)
	if !ok {
		return nil, false
	}
	record := NewRecord(def.Name, def.Columns...)
	for field, value := range def.Values {
		record.Set(field, value)
	}
	return record, true
}

// Names returns the sorted model names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.models))
	for name := range s.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("model: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("model: parse %s: invalid JSON or YAML", source)
}

func normaliseDefinition(name, source string, raw modelFile) (Definition, error) {
	def := Definition{
		Name:   name,
		Source: source,
		Values: make(map[string]any, len(raw.Values)),
	}
	seen := make(map[string]struct{}, len(raw.Columns))
	for idx, column := range raw.Columns {
		columnName := strings.TrimSpace(column.Name)
		if columnName == "" {
			return Definition{}, fmt.Errorf("model: %s column %d of %q has no name", source, idx, name)
		}
		if _, dup := seen[columnName]; dup {
			return Definition{}, fmt.Errorf("model: %s declares column %q of %q twice", source, columnName, name)
		}
		seen[columnName] = struct{}{}
		def.Columns = append(def.Columns, Column{Name: columnName, Kind: ParseStorageKind(column.Kind)})
	}
	for field, value := range raw.Values {
		if _, ok := seen[strings.TrimSpace(field)]; !ok {
			return Definition{}, fmt.Errorf("model: %s sets value for undeclared column %q of %q", source, field, name)
		}
		def.Values[strings.TrimSpace(field)] = value
	}
	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
