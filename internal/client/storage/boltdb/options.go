package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/kolab-hr/kolabctl/internal/client/storage"
)

// SaveOptions stores a serialized option list under the given key
func (s *Storage) SaveOptions(ctx context.Context, key string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOptions)
		if bucket == nil {
			return fmt.Errorf("options bucket not found")
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save options %q: %w", key, err)
		}

		return nil
	})
}

// GetOptions retrieves a cached option list
func (s *Storage) GetOptions(ctx context.Context, key string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOptions)
		if bucket == nil {
			return fmt.Errorf("options bucket not found")
		}

		stored := bucket.Get([]byte(key))
		if stored == nil {
			return storage.ErrOptionsNotFound
		}

		// Копируем, так как данные bbolt валидны только внутри транзакции
		data = make([]byte, len(stored))
		copy(data, stored)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
