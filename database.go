package terminfo

import (
	"os"
	"path/filepath"
	"sort"
)

// Database indexes the leaf names under a terminfo directory tree without
// reading any file contents; entries are decoded lazily on Load.
type Database struct {
	root  string
	paths map[string]string // leaf name -> absolute path
}

// Open walks root (in the usual "x/xterm" or darwin-style hashed-leaf
// layout) and records every file it finds by its leaf name, following
// arp242-zli's findTerminfo/fromPath search, minus the directory-list
// guessing: the caller names the single root to walk.
func Open(root string) (*Database, error) {
	db := &Database{root: root, paths: map[string]string{}}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		db.paths[d.Name()] = path
		return nil
	})
	if err != nil {
		return nil, &FormatError{Path: root, Msg: "walking terminfo directory: " + err.Error()}
	}
	return db, nil
}

// Load decodes the entry named name, or returns a *NotFoundError if no
// file with that leaf name was indexed by Open.
func (db *Database) Load(name string) (*Entry, error) {
	path, ok := db.paths[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Msg: err.Error()}
	}
	return Decode(path, data)
}

// LoadDefault loads the entry named by $TERM, or by fallback if $TERM is
// unset or empty. It returns a *ConfigError if neither is set.
func (db *Database) LoadDefault(fallback string) (*Entry, error) {
	name := os.Getenv("TERM")
	if name == "" {
		name = fallback
	}
	if name == "" {
		return nil, &ConfigError{Msg: "$TERM is unset and no fallback terminal name was given"}
	}
	return db.Load(name)
}

// Names returns every leaf name this Database indexed, sorted.
func (db *Database) Names() []string {
	names := make([]string, 0, len(db.paths))
	for n := range db.paths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
