// Package socialstore persists user-defined social verbs in a bbolt database
// so that socials created in-game survive a server restart.
package socialstore

import (
	"encoding/json"
	"fmt"
	"sort"

	bbolt "go.etcd.io/bbolt"

	"github.com/crystal-mush/gosoul/pkg/soul"
)

var bucketSocials = []byte("socials")

// Store wraps a bbolt database holding social verb definitions.
type Store struct {
	bolt *bbolt.DB
}

// Open opens or creates a bbolt database file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("socialstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSocials)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("socialstore: create bucket: %w", err)
	}
	return &Store{bolt: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	if s.bolt != nil {
		return s.bolt.Close()
	}
	return nil
}

// Path returns the filesystem path of the underlying bbolt database.
func (s *Store) Path() string {
	if s.bolt != nil {
		return s.bolt.Path()
	}
	return ""
}

// Put persists a social verb definition (write-through).
func (s *Store) Put(verb string, def soul.VerbDef) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("socialstore: encode %s: %w", verb, err)
	}
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSocials).Put([]byte(verb), data)
	})
}

// Get loads a single social verb definition. The second return value is false
// when the verb is not stored.
func (s *Store) Get(verb string) (soul.VerbDef, bool, error) {
	var def soul.VerbDef
	var found bool
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSocials).Get([]byte(verb))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &def)
	})
	if err != nil {
		return soul.VerbDef{}, false, fmt.Errorf("socialstore: decode %s: %w", verb, err)
	}
	return def, found, nil
}

// Delete removes a social verb definition.
func (s *Store) Delete(verb string) error {
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSocials).Delete([]byte(verb))
	})
}

// All loads every stored social verb definition.
func (s *Store) All() (map[string]soul.VerbDef, error) {
	defs := make(map[string]soul.VerbDef)
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSocials).ForEach(func(k, v []byte) error {
			var def soul.VerbDef
			if err := json.Unmarshal(v, &def); err != nil {
				return fmt.Errorf("decode %s: %w", k, err)
			}
			defs[string(k)] = def
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("socialstore: %w", err)
	}
	return defs, nil
}

// Names returns the stored verb names, sorted.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSocials).ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("socialstore: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// LoadInto registers every stored social in the catalog. Definitions that no
// longer validate are skipped and reported.
func (s *Store) LoadInto(catalog *soul.Catalog) (int, error) {
	defs, err := s.All()
	if err != nil {
		return 0, err
	}
	loaded := 0
	for verb, def := range defs {
		if err := catalog.Register(verb, def); err != nil {
			return loaded, fmt.Errorf("socialstore: %w", err)
		}
		loaded++
	}
	return loaded, nil
}
