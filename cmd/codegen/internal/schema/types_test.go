package schema_test

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/entity-palette/cmd/codegen/internal/schema"
)

func TestLoadEntities(t *testing.T) {
	raw := []byte(`[
		{"id": 1, "internalId": 1, "name": "zombie_villager", "displayName": "Zombie Villager", "type": "hostile", "width": 0.6, "height": 1.95, "category": "Hostile mobs"},
		{"id": 0, "name": "item", "displayName": "Item"},
		{"id": 1, "displayName": "Duplicate"}
	]`)

	entities, err := schema.LoadEntities(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}

	wantIDs := []int{1, 0, 1}
	for i, e := range entities {
		if e.ID != wantIDs[i] {
			t.Errorf("entity %d: expected ID %d, got %d", i, wantIDs[i], e.ID)
		}
	}
	if entities[0].DisplayName != "Zombie Villager" {
		t.Errorf("expected display name %q, got %q", "Zombie Villager", entities[0].DisplayName)
	}
	if entities[0].Width == nil || *entities[0].Width != 0.6 {
		t.Errorf("expected width 0.6, got %v", entities[0].Width)
	}
	if entities[1].Height != nil {
		t.Errorf("expected nil height, got %v", *entities[1].Height)
	}
}

func TestLoadEntities_EmptyArray(t *testing.T) {
	entities, err := schema.LoadEntities([]byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entities == nil || len(entities) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entities)
	}
}

func TestLoadEntities_NoRecords(t *testing.T) {
	for _, raw := range []string{"", " \n", "null"} {
		_, err := schema.LoadEntities([]byte(raw))
		if !errors.Is(err, schema.ErrNoRecords) {
			t.Errorf("input %q: expected ErrNoRecords, got %v", raw, err)
		}
	}
}

func TestLoadEntities_Malformed(t *testing.T) {
	_, err := schema.LoadEntities([]byte(`{"id": 1}`))
	if err == nil {
		t.Fatal("expected error for non-array document, got nil")
	}
	if errors.Is(err, schema.ErrNoRecords) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
