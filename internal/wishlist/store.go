// Package wishlist persists the saved-items and comparison lists to a
// local key-value store, keyed per session. Unlike the cart, which is
// memory-only by design, these survive restarts.
package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	wishlistKeyPrefix = "wishlist:"
	compareKeyPrefix  = "compare:"
)

// MaxCompare caps the comparison tray, matching the storefront's
// four-column compare view.
const MaxCompare = 4

var ErrCompareFull = errors.New("comparison list is full")

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open wishlist store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory backs the store with memory only, for tests.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open in-memory wishlist store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// getList reads the JSON id list under key; a missing key is an empty
// list.
func (s *Store) getList(key []byte) ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ids)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return ids, nil
}

func (s *Store) putList(key []byte, ids []string) error {
	val, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// addTo appends productID to the list if absent, honoring an optional
// size limit. Adding an id already present is a no-op.
func (s *Store) addTo(key []byte, productID string, limit int) error {
	ids, err := s.getList(key)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			return nil
		}
	}
	if limit > 0 && len(ids) >= limit {
		return ErrCompareFull
	}
	return s.putList(key, append(ids, productID))
}

func (s *Store) removeFrom(key []byte, productID string) error {
	ids, err := s.getList(key)
	if err != nil {
		return err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != productID {
			out = append(out, id)
		}
	}
	if len(out) == len(ids) {
		return nil
	}
	return s.putList(key, out)
}

// --- Wishlist ---

func (s *Store) AddWish(sessionID, productID string) error {
	return s.addTo([]byte(wishlistKeyPrefix+sessionID), productID, 0)
}

func (s *Store) RemoveWish(sessionID, productID string) error {
	return s.removeFrom([]byte(wishlistKeyPrefix+sessionID), productID)
}

func (s *Store) Wishes(sessionID string) ([]string, error) {
	return s.getList([]byte(wishlistKeyPrefix + sessionID))
}

// --- Comparison ---

func (s *Store) AddCompare(sessionID, productID string) error {
	return s.addTo([]byte(compareKeyPrefix+sessionID), productID, MaxCompare)
}

func (s *Store) RemoveCompare(sessionID, productID string) error {
	return s.removeFrom([]byte(compareKeyPrefix+sessionID), productID)
}

func (s *Store) Compares(sessionID string) ([]string, error) {
	return s.getList([]byte(compareKeyPrefix + sessionID))
}
