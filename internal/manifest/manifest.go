// Package manifest registers dependencies in a project's package.json.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tacogips/t3init/internal/debug"
	"github.com/tacogips/t3init/internal/template/generator"
)

// FileName is the manifest file name inside a project.
const FileName = "package.json"

const (
	dependenciesKey    = "dependencies"
	devDependenciesKey = "devDependencies"
)

// Manifest is a parsed package.json. Fields other than the dependency maps
// are carried through untouched and keep their original order.
type Manifest struct {
	path   string
	keys   []string
	fields map[string]json.RawMessage
	deps   map[string]string
	dev    map[string]string
}

// Load reads package.json from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newManifestError(ManifestNotFound, path, "package.json not found", err)
		}
		return nil, newManifestError(ManifestInvalid, path, "failed to read package.json", err)
	}

	m := &Manifest{path: path, fields: make(map[string]json.RawMessage)}
	if err := m.decodeFields(data); err != nil {
		return nil, newManifestError(ManifestInvalid, path, "invalid JSON syntax", err)
	}

	if m.deps, err = m.dependencyMap(dependenciesKey); err != nil {
		return nil, err
	}
	if m.dev, err = m.dependencyMap(devDependenciesKey); err != nil {
		return nil, err
	}
	return m, nil
}

// decodeFields reads the top-level object, recording key order. A repeated
// key keeps its first position and its last value.
func (m *Manifest) decodeFields(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("top level must be an object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if _, seen := m.fields[key]; !seen {
			m.keys = append(m.keys, key)
		}
		m.fields[key] = raw
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after top-level object")
	}
	return nil
}

func (m *Manifest) dependencyMap(key string) (map[string]string, error) {
	var out map[string]string
	if raw, ok := m.fields[key]; ok {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, newManifestError(ManifestInvalid, m.path, "invalid "+key+" section", err)
		}
	}
	// A missing section and an explicit null both start empty.
	if out == nil {
		out = make(map[string]string)
	}
	return out, nil
}

// Path returns the file the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Dependencies returns a copy of the runtime or dev dependency map.
func (m *Manifest) Dependencies(dev bool) map[string]string {
	src := m.deps
	if dev {
		src = m.dev
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Add pins every name at its mapped version. An unknown name fails the whole
// call before anything is changed.
func (m *Manifest) Add(names []string, dev bool) error {
	versions := make([]string, len(names))
	for i, name := range names {
		v, err := Version(name)
		if err != nil {
			return err
		}
		versions[i] = v
	}

	target := m.deps
	if dev {
		target = m.dev
	}
	for i, name := range names {
		target[name] = versions[i]
		debug.Debug("[manifest] %s@%s (dev: %t)", name, versions[i], dev)
	}
	return nil
}

// Marshal encodes the manifest with two-space indentation and a trailing
// newline. Top-level keys keep their original order and new dependency
// sections are appended. encoding/json sorts map keys, so the dependency maps
// themselves come out alphabetized.
func (m *Manifest) Marshal() ([]byte, error) {
	keys := append([]string(nil), m.keys...)
	fields := make(map[string]json.RawMessage, len(m.fields)+2)
	for k, v := range m.fields {
		fields[k] = v
	}
	for _, section := range []struct {
		key  string
		deps map[string]string
	}{
		{dependenciesKey, m.deps},
		{devDependenciesKey, m.dev},
	} {
		if len(section.deps) == 0 {
			continue
		}
		raw, err := encode(section.deps, "")
		if err != nil {
			return nil, err
		}
		if _, ok := fields[section.key]; !ok {
			keys = append(keys, section.key)
		}
		fields[section.key] = bytes.TrimSpace(raw)
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		name, err := encode(key, "")
		if err != nil {
			return nil, err
		}
		compact.Write(bytes.TrimSpace(name))
		compact.WriteByte(':')
		compact.Write(fields[key])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encode is json.Marshal without HTML escaping, so ranges like ">=1.0.0"
// survive a round trip.
func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the manifest back to its path.
func (m *Manifest) Save(w generator.Writer) error {
	data, err := m.Marshal()
	if err != nil {
		return newManifestError(ManifestWriteFailed, m.path, "failed to marshal package.json", err)
	}
	if err := w.WriteFile(m.path, data, 0644); err != nil {
		return newManifestError(ManifestWriteFailed, m.path, "failed to write package.json", err)
	}
	return nil
}

// AddDependencies loads projectDir/package.json, pins names as runtime or dev
// dependencies, and writes the file back.
func AddDependencies(w generator.Writer, projectDir string, names []string, dev bool) error {
	if len(names) == 0 {
		return nil
	}

	m, err := Load(filepath.Join(projectDir, FileName))
	if err != nil {
		return err
	}
	if err := m.Add(names, dev); err != nil {
		return err
	}
	return m.Save(w)
}
