package v1

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// EventName is the kind of change a record describes.
type EventName string

const (
	EventInsert EventName = "INSERT"
	EventModify EventName = "MODIFY"
	EventRemove EventName = "REMOVE"
)

// Valid reports whether n is one of the three change kinds.
func (n EventName) Valid() bool {
	return n == EventInsert || n == EventModify || n == EventRemove
}

// ChangeRecord is one notification from the contest-results change stream.
// Images are the stored attribute form of the item before and after the change.
type ChangeRecord struct {
	// EventID identifies the notification. Redeliveries carry the same ID.
	EventID string `json:"event_id"`

	EventName EventName `json:"event_name"`

	// Keys holds the partition and sort key of the changed item. It is
	// enough to decide which entity type the record belongs to.
	Keys map[string]string `json:"keys"`

	// OldImage is present for MODIFY and REMOVE.
	OldImage json.RawMessage `json:"old_image,omitempty"`

	// NewImage is present for INSERT and MODIFY.
	NewImage json.RawMessage `json:"new_image,omitempty"`

	RecordedAt time.Time `json:"recorded_at"`

	// Seq is the change log position assigned on append. Not exposed in the API.
	Seq int64 `json:"-"`
}

// Validate checks the record shape. Image contents are decoded later by the
// consumer that owns the entity type.
func (c *ChangeRecord) Validate() error {
	if !c.EventName.Valid() {
		return fmt.Errorf("event_name must be one of INSERT, MODIFY, REMOVE")
	}
	if len(c.Keys) == 0 {
		return fmt.Errorf("keys are required")
	}
	needOld := c.EventName == EventModify || c.EventName == EventRemove
	needNew := c.EventName == EventModify || c.EventName == EventInsert
	if needOld && len(c.OldImage) == 0 {
		return fmt.Errorf("old_image is required for %s", c.EventName)
	}
	if needNew && len(c.NewImage) == 0 {
		return fmt.Errorf("new_image is required for %s", c.EventName)
	}
	return nil
}

// IdempotencyKey returns EventID, or a content fingerprint when the producer
// did not assign one, so redeliveries of the same change map to the same key.
// The fingerprint ignores RecordedAt, so two genuinely separate but identical
// changes (INSERT, REMOVE, then the same INSERT again) collide unless the
// producer gives each its own EventID.
func (c *ChangeRecord) IdempotencyKey() string {
	if c.EventID != "" {
		return c.EventID
	}
	keys := make([]string, 0, len(c.Keys))
	for k := range c.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	fmt.Fprintf(h, "%s\n", c.EventName)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\n", k, c.Keys[k])
	}
	h.Write(c.OldImage)
	h.Write([]byte{0})
	h.Write(c.NewImage)
	return fmt.Sprintf("sha256:%x", h.Sum(nil))
}
