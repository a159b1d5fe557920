package level

import (
	"os"
	"path/filepath"
	"testing"
)

const loaderTestYAML = `id: yard
name: The Yard
rows:
  - "##########"
  - "#        #"
  - "#1234 p  #"
  - "##########"
spawns:
  - {actor: 1, x: 1, y: 1}
  - {actor: 2, x: 2, y: 1}
  - {actor: 3, x: 3, y: 1}
  - {actor: 4, x: 4, y: 1}
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(loaderTestYAML))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if l.ID != "yard" || l.Name != "The Yard" {
		t.Errorf("metadata = %q/%q", l.ID, l.Name)
	}
	if l.W != 10 || l.H != 4 {
		t.Errorf("dimensions = %dx%d, want 10x4", l.W, l.H)
	}
}

func TestParseYAMLRejectsInvalidActor(t *testing.T) {
	doc := `id: bad
rows: ["#"]
spawns:
  - {actor: 7, x: 0, y: 0}
`
	if _, err := ParseYAML([]byte(doc)); err == nil {
		t.Error("spawn for an invalid actor should fail")
	}
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yard.yaml"), []byte(loaderTestYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("rows: [\"#\", \"##\"]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatal(err)
	}

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("LoadAll loaded %d levels, want 1", len(levels))
	}
	if levels[0].ID != "yard" {
		t.Errorf("loaded level ID = %q, want yard", levels[0].ID)
	}
}
