package tlog

import (
	"encoding/binary"
	"fmt"
	"time"

	"coopchain/jsonx"
	"coopchain/logx"

	bolt "go.etcd.io/bbolt"
)

var bucketOperations = []byte("operations")

// Entry is one submitted operation identifier with its submission time.
type Entry struct {
	Hash string    `json:"hash"`
	Time time.Time `json:"time"`
}

// Journal is an append-only audit trail of submitted operations, persisted
// across CLI invocations. There is no delete path.
type Journal struct {
	db *bolt.DB
}

func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal at %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketOperations)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Record appends one operation hash with the current timestamp.
func (j *Journal) Record(hash string) error {
	entry := Entry{Hash: hash, Time: time.Now()}
	data, err := jsonx.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal journal entry: %w", err)
	}
	err = j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOperations)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], data)
	})
	if err != nil {
		return fmt.Errorf("failed to write journal entry: %w", err)
	}
	logx.Info("JOURNAL", "Recorded operation: ", hash)
	return nil
}

// Entries returns all recorded operations, newest first.
func (j *Journal) Entries() ([]Entry, error) {
	var entries []Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketOperations).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var e Entry
			if err := jsonx.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("corrupt journal entry: %w", err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}
