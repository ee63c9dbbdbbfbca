// ABOUTME: Badger-backed Store, the default backend.
// ABOUTME: Routes Badger's internal logging through the application logger.
package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v3"
)

// BadgerStore keeps blobs in an embedded Badger database.
type BadgerStore struct {
	db  *badger.DB
	dir string
}

// Compile-time check that BadgerStore implements Store.
var _ Store = (*BadgerStore)(nil)

// OpenBadger opens or creates a Badger database in dir.
// A nil logger silences Badger.
func OpenBadger(dir string, logger *log.Logger) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger.WithPrefix("badger")})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db, dir: dir}, nil
}

// Get retrieves a blob by key.
func (b *BadgerStore) Get(key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return string(value), true, nil
}

// Set stores a blob, replacing any previous value.
func (b *BadgerStore) Set(key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (b *BadgerStore) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// badgerLogger adapts charmbracelet/log to badger.Logger.
type badgerLogger struct {
	l *log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Errorf(format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Warnf(format, args...)
}

// Badger's info chatter goes to debug.
func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.l.Debugf(format, args...)
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.l.Debugf(format, args...)
}
