package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tacogips/t3init/internal/template/generator"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write package.json: %v", err)
	}
	return path
}

func TestVersionMapValid(t *testing.T) {
	if err := ValidateVersionMap(); err != nil {
		t.Fatalf("ValidateVersionMap() error = %v", err)
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		r       string
		wantErr bool
	}{
		{"caret", "^10.43.6", false},
		{"tilde", "~1.0.7", false},
		{"exact", "2.2.1", false},
		{"empty", "", true},
		{"caret only", "^", true},
		{"two components", "^4.24", true},
		{"tag", "latest", true},
		{"garbage", "^x.y.z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRange(tt.r)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRange(%q) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	v, err := Version("@trpc/server")
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if v != "^10.43.6" {
		t.Errorf("Version(@trpc/server) = %q, want ^10.43.6", v)
	}

	_, err = Version("left-pad")
	var mErr *ManifestError
	if !errors.As(err, &mErr) || mErr.Type != UnknownPackage {
		t.Errorf("Version(left-pad) error = %v, want UnknownPackage", err)
	}
}

func TestPackagesSorted(t *testing.T) {
	names := Packages()
	if len(names) != len(versionMap) {
		t.Fatalf("Packages() returned %d names, want %d", len(names), len(versionMap))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Packages() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantType ManifestErrorType
		wantErr  bool
		wantDeps map[string]string
	}{
		{
			name:     "with dependencies",
			content:  `{"name":"app","dependencies":{"next":"^14.0.0"}}`,
			wantDeps: map[string]string{"next": "^14.0.0"},
		},
		{
			name:     "no dependencies",
			content:  `{"name":"app"}`,
			wantDeps: map[string]string{},
		},
		{
			name:     "null dependencies",
			content:  `{"name":"app","dependencies":null,"devDependencies":null}`,
			wantDeps: map[string]string{},
		},
		{
			name:     "top level array",
			content:  `["next"]`,
			wantErr:  true,
			wantType: ManifestInvalid,
		},
		{
			name:     "trailing data",
			content:  `{"name":"app"} {"name":"other"}`,
			wantErr:  true,
			wantType: ManifestInvalid,
		},
		{
			name:     "invalid JSON",
			content:  `{"name":`,
			wantErr:  true,
			wantType: ManifestInvalid,
		},
		{
			name:     "dependencies not an object",
			content:  `{"dependencies":["next"]}`,
			wantErr:  true,
			wantType: ManifestInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)

			m, err := Load(path)
			if tt.wantErr {
				var mErr *ManifestError
				if !errors.As(err, &mErr) || mErr.Type != tt.wantType {
					t.Fatalf("Load() error = %v, want type %v", err, tt.wantType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if m.Path() != path {
				t.Errorf("Path() = %s, want %s", m.Path(), path)
			}
			if diff := cmp.Diff(tt.wantDeps, m.Dependencies(false)); diff != "" {
				t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))

	var mErr *ManifestError
	if !errors.As(err, &mErr) || mErr.Type != ManifestNotFound {
		t.Fatalf("Load() error = %v, want ManifestNotFound", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("ManifestNotFound should wrap os.ErrNotExist")
	}
}

func TestAddUnknownPackageChangesNothing(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `{"dependencies":{"next":"^14.0.0"}}`)
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	err = m.Add([]string{"superjson", "not-a-real-package"}, false)
	var mErr *ManifestError
	if !errors.As(err, &mErr) || mErr.Type != UnknownPackage {
		t.Fatalf("Add() error = %v, want UnknownPackage", err)
	}
	if mErr.File != "not-a-real-package" {
		t.Errorf("error names %q, want the unknown package", mErr.File)
	}
	if _, ok := m.Dependencies(false)["superjson"]; ok {
		t.Error("Add() must not apply any name when one is unknown")
	}
}

func TestAddDependencies(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `{
  "name": "my-app",
  "private": true,
  "scripts": {"dev": "next dev"},
  "dependencies": {"next": ">=14.0.0", "superjson": "^1.0.0"},
  "devDependencies": {"typescript": "^5.1.6"}
}
`)

	w := generator.NewFileWriter(false)
	if err := AddDependencies(w, dir, []string{"superjson", "@trpc/server"}, false); err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}
	if err := AddDependencies(w, dir, nil, true); err != nil {
		t.Fatalf("AddDependencies() with no names error = %v", err)
	}
	if err := AddDependencies(w, dir, []string{"@tanstack/react-query"}, true); err != nil {
		t.Fatalf("AddDependencies() dev error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.HasSuffix(text, "}\n") {
		t.Error("package.json should end with a newline")
	}
	if !strings.Contains(text, "\n  \"name\": \"my-app\"") {
		t.Errorf("package.json should use two-space indentation:\n%s", text)
	}
	if !strings.Contains(text, `">=14.0.0"`) {
		t.Errorf("existing range was HTML-escaped:\n%s", text)
	}

	var got struct {
		Name            string            `json:"name"`
		Private         bool              `json:"private"`
		Scripts         map[string]string `json:"scripts"`
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("rewritten package.json is invalid: %v", err)
	}

	if got.Name != "my-app" || !got.Private || got.Scripts["dev"] != "next dev" {
		t.Errorf("unrelated fields changed: %+v", got)
	}

	wantDeps := map[string]string{
		"next":         ">=14.0.0",
		"superjson":    "^2.2.1",
		"@trpc/server": "^10.43.6",
	}
	if diff := cmp.Diff(wantDeps, got.Dependencies); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}

	wantDev := map[string]string{
		"typescript":            "^5.1.6",
		"@tanstack/react-query": "^4.36.1",
	}
	if diff := cmp.Diff(wantDev, got.DevDependencies); diff != "" {
		t.Errorf("devDependencies mismatch (-want +got):\n%s", diff)
	}
}

func TestAddDependenciesCreatesSection(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name":"bare"}`)

	if err := AddDependencies(generator.NewFileWriter(false), dir, []string{"lucia"}, false); err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}

	m, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"lucia": "^2.7.4"}, m.Dependencies(false)); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if len(m.Dependencies(true)) != 0 {
		t.Error("devDependencies should not be created")
	}
}

func TestAddDependenciesMissingManifest(t *testing.T) {
	err := AddDependencies(generator.NewFileWriter(false), t.TempDir(), []string{"superjson"}, false)

	var mErr *ManifestError
	if !errors.As(err, &mErr) || mErr.Type != ManifestNotFound {
		t.Fatalf("AddDependencies() error = %v, want ManifestNotFound", err)
	}
}

func TestAddDependenciesNullSections(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name":"app","dependencies":null,"devDependencies":null}`)

	w := generator.NewFileWriter(false)
	if err := AddDependencies(w, dir, []string{"superjson"}, false); err != nil {
		t.Fatalf("AddDependencies() error = %v", err)
	}
	if err := AddDependencies(w, dir, []string{"@trpc/server"}, true); err != nil {
		t.Fatalf("AddDependencies() dev error = %v", err)
	}

	m, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"superjson": "^2.2.1"}, m.Dependencies(false)); diff != "" {
		t.Errorf("dependencies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"@trpc/server": "^10.43.6"}, m.Dependencies(true)); diff != "" {
		t.Errorf("devDependencies mismatch (-want +got):\n%s", diff)
	}
}

// topLevelKeys returns the keys of a JSON object in document order.
func topLevelKeys(t *testing.T, data []byte) []string {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(string(data)))
	if _, err := dec.Token(); err != nil {
		t.Fatal(err)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatal(err)
		}
	}
	return keys
}

func TestMarshalKeepsKeyOrder(t *testing.T) {
	tests := []struct {
		name    string
		content string
		add     []string
		dev     bool
		want    []string
	}{
		{
			name:    "existing section stays in place",
			content: `{"name":"app","version":"0.1.0","scripts":{},"dependencies":{},"engines":{}}`,
			add:     []string{"superjson"},
			want:    []string{"name", "version", "scripts", "dependencies", "engines"},
		},
		{
			name:    "new section is appended",
			content: `{"name":"app","private":true,"scripts":{"dev":"next dev"}}`,
			add:     []string{"superjson"},
			want:    []string{"name", "private", "scripts", "dependencies"},
		},
		{
			name:    "new dev section after existing keys",
			content: `{"name":"app","dependencies":{"next":"^14.0.0"},"type":"module"}`,
			add:     []string{"superjson"},
			dev:     true,
			want:    []string{"name", "dependencies", "type", "devDependencies"},
		},
		{
			name:    "repeated key keeps first position",
			content: `{"name":"a","type":"module","name":"b"}`,
			want:    []string{"name", "type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Load(writeManifest(t, t.TempDir(), tt.content))
			if err != nil {
				t.Fatal(err)
			}
			if err := m.Add(tt.add, tt.dev); err != nil {
				t.Fatal(err)
			}
			data, err := m.Marshal()
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, topLevelKeys(t, data)); diff != "" {
				t.Errorf("key order mismatch (-want +got):\n%s", diff)
			}
			if !strings.HasPrefix(string(data), "{\n  \"name\": ") {
				t.Errorf("name should be the first key:\n%s", data)
			}
		})
	}
}

func TestVersionRejectsInvalidPin(t *testing.T) {
	versionMap["broken-pin"] = "^1.2"
	t.Cleanup(func() { delete(versionMap, "broken-pin") })

	_, err := Version("broken-pin")
	var mErr *ManifestError
	if !errors.As(err, &mErr) || mErr.Type != InvalidVersion {
		t.Fatalf("Version() error = %v, want InvalidVersion", err)
	}
	if err := ValidateVersionMap(); err == nil {
		t.Error("ValidateVersionMap() should report the broken pin")
	}

	path := writeManifest(t, t.TempDir(), `{"name":"app"}`)
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Add([]string{"superjson", "broken-pin"}, false); err == nil {
		t.Fatal("Add() should fail on an invalid pin")
	}
	if len(m.Dependencies(false)) != 0 {
		t.Error("Add() must not apply any name when a pin is invalid")
	}
}
