package evaluator

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/funvibe/colorexpr/internal/value"
)

// LastValueName is where a program leaves the value of its last
// statement.
const LastValueName = "$"

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// Environment is the variable store. Names are case-insensitive and the
// leading '$' is optional.
type Environment struct {
	mu    sync.RWMutex
	store map[string]value.Value
}

// Key normalizes a variable name: "$Col" and "col" share a key, and the
// bare "$" is kept as is.
func Key(name string) string {
	key := cases.Fold().String(strings.TrimPrefix(name, "$"))
	if key == "" {
		return LastValueName
	}
	return key
}

func (e *Environment) Get(name string) (value.Value, bool) {
	e.mu.RLock()
	v, ok := e.store[Key(name)]
	e.mu.RUnlock()
	return v, ok
}

// Set stores val under name. It returns false for a nil value, which
// leaves the store unchanged.
func (e *Environment) Set(name string, val value.Value) bool {
	if val == nil {
		return false
	}
	e.mu.Lock()
	e.store[Key(name)] = val
	e.mu.Unlock()
	return true
}

// Delete removes name and returns the value it held.
func (e *Environment) Delete(name string) (value.Value, bool) {
	key := Key(name)
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.store[key]
	delete(e.store, key)
	return v, ok
}

// Names lists the stored keys in sorted order.
func (e *Environment) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.store))
}

// GetStore returns a copy of the store.
func (e *Environment) GetStore() map[string]value.Value {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.store)
}
