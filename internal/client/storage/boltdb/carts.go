package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophstore/internal/client/storage"
	"github.com/iudanet/gophstore/internal/models"
)

// SaveCart stores the cart snapshot for the owner
func (s *Storage) SaveCart(ctx context.Context, owner string, lines []models.CartLine) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCarts)
		if bucket == nil {
			return fmt.Errorf("carts bucket not found")
		}

		data, err := json.Marshal(lines)
		if err != nil {
			return fmt.Errorf("failed to marshal cart: %w", err)
		}

		if err := bucket.Put([]byte(owner), data); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}

		return nil
	})
}

// GetCart retrieves the cart snapshot for the owner
func (s *Storage) GetCart(ctx context.Context, owner string) ([]models.CartLine, error) {
	var lines []models.CartLine

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCarts)
		if bucket == nil {
			return fmt.Errorf("carts bucket not found")
		}

		data := bucket.Get([]byte(owner))
		if data == nil {
			return storage.ErrCartNotFound
		}

		if err := json.Unmarshal(data, &lines); err != nil {
			return fmt.Errorf("failed to unmarshal cart: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return lines, nil
}

// DeleteCart removes the cart snapshot for the owner
func (s *Storage) DeleteCart(ctx context.Context, owner string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCarts)
		if bucket == nil {
			return fmt.Errorf("carts bucket not found")
		}

		if bucket.Get([]byte(owner)) == nil {
			return storage.ErrCartNotFound
		}

		if err := bucket.Delete([]byte(owner)); err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		return nil
	})
}
