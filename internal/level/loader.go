package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/elequad/internal/party"
)

// yamlLevel is the YAML structure for a level file.
type yamlLevel struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Rows   []string    `yaml:"rows"`
	Spawns []yamlSpawn `yaml:"spawns"`
}

// yamlSpawn places one actor's spawn point in tile coordinates.
type yamlSpawn struct {
	Actor int `yaml:"actor"`
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
}

// ParseYAML parses a YAML level document.
func ParseYAML(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	spawns := make(map[party.ActorID]Coord, len(yl.Spawns))
	for _, s := range yl.Spawns {
		id := party.ActorID(s.Actor)
		if !id.Valid() {
			return nil, fmt.Errorf("level %s: spawn for invalid actor %d", yl.ID, s.Actor)
		}
		spawns[id] = Coord{X: s.X, Y: s.Y}
	}

	return Parse(yl.ID, yl.Name, yl.Rows, spawns)
}

// Loader loads levels from a directory of YAML files.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Results are sorted by ID for deterministic
// ordering.
func (l *Loader) LoadAll() ([]*Level, error) {
	var levels []*Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("level: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: reading file %s: %w", path, err)
	}

	lvl, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("level: parsing file %s: %w", path, err)
	}

	return lvl, nil
}

// RegisterAll loads every level under the loader's root and registers
// any whose ID is not already taken by a built-in.
func (l *Loader) RegisterAll() error {
	levels, err := l.LoadAll()
	if err != nil {
		return err
	}

	for _, lvl := range levels {
		if Exists(lvl.ID) {
			continue
		}
		id, name, rows, spawns := lvl.ID, lvl.Name, lvl.RowStrings(), lvl.SpawnCoords()
		Register(id, func() *Level {
			return mustParse(id, name, rows, spawns)
		})
	}
	return nil
}

// RowStrings reconstructs the pristine grid as ASCII rows.
func (l *Level) RowStrings() []string {
	rows := make([]string, l.H)
	for y := 0; y < l.H; y++ {
		var sb strings.Builder
		sb.Grow(l.W)
		for x := 0; x < l.W; x++ {
			sb.WriteRune(rune(l.pristine[y*l.W+x]))
		}
		rows[y] = sb.String()
	}
	return rows
}

// SpawnCoords returns the spawn tile coordinates per actor.
func (l *Level) SpawnCoords() map[party.ActorID]Coord {
	coords := make(map[party.ActorID]Coord, len(l.spawns))
	for id, v := range l.spawns {
		coords[id] = Coord{X: WorldToTile(v.X), Y: WorldToTile(v.Y)}
	}
	return coords
}
