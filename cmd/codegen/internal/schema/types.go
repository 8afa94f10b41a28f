package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoRecords is returned by LoadEntities when the document holds no array
// at all (an empty body or a JSON null).
var ErrNoRecords = errors.New("no records")

// Entity is one row of minecraft-data's entities.json. Only ID and
// DisplayName end up in a palette; the rest is kept so the decoder accepts
// every upstream revision without surprises.
type Entity struct {
	ID          int      `json:"id"`
	InternalID  int      `json:"internalId"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Type        string   `json:"type"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	Category    string   `json:"category"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}

// LoadEntities decodes entities.json, keeping source order. An empty array
// is valid and yields a non-nil, zero-length slice.
func LoadEntities(data []byte) ([]Entity, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoRecords
	}
	entities, err := LoadJSON[Entity](data)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		return nil, ErrNoRecords
	}
	return entities, nil
}
