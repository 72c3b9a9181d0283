package braille

import (
	"sort"
	"sync"

	"github.com/derekparker/trie"
)

// registry holds named tables. Table names are looked up by prefix, e.g.
// "en" lists all English tables.
var registry = struct {
	sync.RWMutex
	names *trie.Trie
}{
	names: trie.New(),
}

func init() {
	RegisterTable(DefaultTableName, defaultTable)
}

// RegisterTable makes t available under name, replacing any table
// previously registered with that name.
func RegisterTable(name string, t *Table) {
	assert(name != "", "table name must not be empty")
	assert(t != nil, "cannot register nil table")
	registry.Lock()
	defer registry.Unlock()
	if _, found := registry.names.Find(name); found {
		registry.names.Remove(name)
		tracer().Infof("replacing registered Braille table %q", name)
	}
	registry.names.Add(name, t)
}

// TableByName returns the table registered under name.
func TableByName(name string) (*Table, bool) {
	registry.RLock()
	defer registry.RUnlock()
	node, found := registry.names.Find(name)
	if !found {
		return nil, false
	}
	t, ok := node.Meta().(*Table)
	return t, ok
}

// TableNames returns the sorted names of all registered tables starting
// with prefix. An empty prefix lists all tables.
func TableNames(prefix string) []string {
	registry.RLock()
	var names []string
	if prefix == "" {
		names = registry.names.Keys()
	} else {
		names = registry.names.PrefixSearch(prefix)
	}
	registry.RUnlock()
	sort.Strings(names)
	return names
}
