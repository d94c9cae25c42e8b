package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DeliveryDeduper guards the external webhook against double delivery.
// Key format: notify:<recognition_id>
type DeliveryDeduper struct {
	client *redis.Client
}

// NewDeliveryDeduper creates a DeliveryDeduper wrapping the given Redis client.
func NewDeliveryDeduper(client *redis.Client) *DeliveryDeduper {
	return &DeliveryDeduper{client: client}
}

// IsDuplicate reports whether this recognition was already delivered.
func (d *DeliveryDeduper) IsDuplicate(ctx context.Context, recognitionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(recognitionID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this recognition was delivered (expires after dedupTTL).
func (d *DeliveryDeduper) Mark(ctx context.Context, recognitionID string) error {
	return d.client.Set(ctx, d.key(recognitionID), "1", dedupTTL).Err()
}

func (d *DeliveryDeduper) key(recognitionID string) string {
	return "notify:" + recognitionID
}
