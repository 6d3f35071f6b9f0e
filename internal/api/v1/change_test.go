package v1

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestChangeRecord_Validation(t *testing.T) {
	keys := map[string]string{"PK": "ATHLETE#a", "SK": "CONTEST#2023#blind#c"}
	img := json.RawMessage(`{"points":1}`)

	tests := []struct {
		name    string
		record  ChangeRecord
		wantErr bool
	}{
		{name: "insert", record: ChangeRecord{EventName: EventInsert, Keys: keys, NewImage: img}},
		{name: "modify", record: ChangeRecord{EventName: EventModify, Keys: keys, OldImage: img, NewImage: img}},
		{name: "remove", record: ChangeRecord{EventName: EventRemove, Keys: keys, OldImage: img}},
		{name: "unknown kind", record: ChangeRecord{EventName: "UPSERT", Keys: keys, NewImage: img}, wantErr: true},
		{name: "no keys", record: ChangeRecord{EventName: EventInsert, NewImage: img}, wantErr: true},
		{name: "insert without new image", record: ChangeRecord{EventName: EventInsert, Keys: keys}, wantErr: true},
		{name: "modify without old image", record: ChangeRecord{EventName: EventModify, Keys: keys, NewImage: img}, wantErr: true},
		{name: "remove without old image", record: ChangeRecord{EventName: EventRemove, Keys: keys}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangeRecord_IdempotencyKey(t *testing.T) {
	withID := ChangeRecord{EventID: "evt-1", EventName: EventInsert}
	if got := withID.IdempotencyKey(); got != "evt-1" {
		t.Fatalf("IdempotencyKey() = %q, want evt-1", got)
	}

	a := ChangeRecord{
		EventName: EventInsert,
		Keys:      map[string]string{"PK": "p", "SK": "s"},
		NewImage:  json.RawMessage(`{"points":3}`),
	}
	b := a
	b.Keys = map[string]string{"SK": "s", "PK": "p"}

	ka, kb := a.IdempotencyKey(), b.IdempotencyKey()
	if ka != kb {
		t.Fatalf("fingerprint must be stable across map ordering: %q != %q", ka, kb)
	}
	if !strings.HasPrefix(ka, "sha256:") {
		t.Fatalf("unexpected fingerprint format %q", ka)
	}

	c := a
	c.NewImage = json.RawMessage(`{"points":4}`)
	if c.IdempotencyKey() == ka {
		t.Fatal("different images must produce different fingerprints")
	}

	redelivered := a
	redelivered.RecordedAt = time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	if redelivered.IdempotencyKey() != ka {
		t.Fatal("receipt time must not change the fingerprint")
	}

	// Repeating an identical change needs a fresh event ID from the producer.
	first, again := a, a
	first.EventID, again.EventID = "evt-insert-1", "evt-insert-2"
	if first.IdempotencyKey() == again.IdempotencyKey() {
		t.Fatal("identical changes with distinct event IDs must not collide")
	}
}
