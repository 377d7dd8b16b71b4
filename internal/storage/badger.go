package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/niranjan230/Shopify-Store-Insights-Analyzer/internal/entity"
)

// BadgerRepository implements Repository on an embedded BadgerDB with
// native TTL expiry. An empty path opens the store in memory, which is
// also how tests run it.
type BadgerRepository struct {
	db  *badger.DB
	ttl time.Duration
}

// NewBadgerRepository opens the cache at path with the given entry TTL.
func NewBadgerRepository(path string, ttl time.Duration) (*BadgerRepository, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening profile cache at %q: %w", path, err)
	}
	return &BadgerRepository{db: db, ttl: ttl}, nil
}

// Close shuts the underlying store down.
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

func profileKey(websiteURL string) []byte {
	return []byte("profile:" + websiteURL)
}

// SaveProfile stores the profile as JSON under its site URL. Entries
// expire after the configured TTL; a zero TTL disables expiry.
func (r *BadgerRepository) SaveProfile(_ context.Context, profile *entity.BrandProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling profile for %s: %w", profile.WebsiteURL, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(profileKey(profile.WebsiteURL), payload)
		if r.ttl > 0 {
			entry = entry.WithTTL(r.ttl)
		}
		return txn.SetEntry(entry)
	})
}

// GetProfile loads a cached profile, mapping both missing and expired
// keys to ErrNotFound.
func (r *BadgerRepository) GetProfile(_ context.Context, websiteURL string) (*entity.BrandProfile, error) {
	var profile entity.BrandProfile
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(websiteURL))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading cached profile for %s: %w", websiteURL, err)
	}
	return &profile, nil
}

var _ Repository = (*BadgerRepository)(nil)
