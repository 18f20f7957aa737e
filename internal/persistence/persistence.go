package persistence

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/markusressel/plant2go/internal/events"
	"github.com/markusressel/plant2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketEvents = "events"
)

// EventStore persists event records in a bbolt database.
// It implements events.Sink.
type EventStore interface {
	events.Sink

	Init() error
	LoadEvents(ctx context.Context) ([]events.Record, error)
	DeleteEvents(ctx context.Context) error
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) EventStore {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Name() string {
	return "bolt:" + p.dbPath
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence(ctx context.Context) (db *bolt.DB, err error) {
	timeout := 1 * time.Minute
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Write appends the given records to the events bucket.
// All records are written in a single transaction.
func (p persistence) Write(ctx context.Context, records []events.Record) error {
	db, err := p.openPersistence(ctx)
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketEvents))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		for _, record := range records {
			if err := ctx.Err(); err != nil {
				return err
			}
			id, err := b.NextSequence()
			if err != nil {
				return err
			}
			data, err := json.Marshal(record)
			if err != nil {
				return err
			}
			if err = b.Put(itob(id), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadEvents returns all stored records in the order they were written
func (p persistence) LoadEvents(ctx context.Context) ([]events.Record, error) {
	db, err := p.openPersistence(ctx)
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var result []events.Record
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketEvents))
		if b == nil {
			return os.ErrNotExist
		}
		return b.ForEach(func(k, v []byte) error {
			var record events.Record
			if err := json.Unmarshal(v, &record); err != nil {
				// skip corrupt entries instead of failing the whole listing
				ui.Warning("Unable to unmarshal saved event %d: %v", binary.BigEndian.Uint64(k), err)
				return nil
			}
			result = append(result, record)
			return nil
		})
	})

	return result, err
}

func (p persistence) DeleteEvents(ctx context.Context) error {
	db, err := p.openPersistence(ctx)
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketEvents))
		if b == nil {
			// no events bucket yet
			return nil
		}
		return tx.DeleteBucket([]byte(BucketEvents))
	})
}

// itob returns an 8-byte big endian representation of v, so keys sort in insertion order
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
