package session

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"salon-backend/internal/models"
)

const (
	bucketName = "session"
	// recordKey is the single fixed storage key for the session record.
	recordKey = "admin_session"
)

// RecordStore persists the session record across restarts.
type RecordStore interface {
	Load() (models.AdminSession, bool, error)
	Save(models.AdminSession) error
	Clear() error
}

// BoltStore keeps the session record in a local bbolt file. The record is
// read once at startup and written on every gate transition.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) the session database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() (models.AdminSession, bool, error) {
	var record models.AdminSession
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(recordKey))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &record)
	})
	return record, found, err
}

func (s *BoltStore) Save(record models.AdminSession) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(recordKey), data)
	})
}

func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(recordKey))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
