package level

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered level.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a fresh instance of a level.
type Factory func() *Level

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry. Built-in levels register
// themselves in init(). Panics if a level with the same ID is already
// registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("level: %q already registered", id))
	}

	factories[id] = f
	names[id] = f().Name
}

// List returns information about all registered levels, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a fresh copy of a level by its ID.
// Returns an error if the level ID is not registered.
func Create(id string) (*Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("level: unknown level %q", id)
	}

	return f(), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
