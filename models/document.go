package models

import (
	"encoding/json"
	"time"
)

// Document is the generic envelope returned by the backend document store.
// Collection-specific fields live in Data and are mapped onto typed models
// by the service layer.
type Document struct {
	ID           string         `json:"$id"`
	CollectionID string         `json:"$collectionId"`
	CreatedAt    time.Time      `json:"$createdAt"`
	UpdatedAt    time.Time      `json:"$updatedAt"`
	Data         map[string]any `json:"-"`
}

// UnmarshalJSON decodes the envelope fields and keeps every remaining
// attribute in Data, so collection schemas stay opaque to the transport.
func (d *Document) UnmarshalJSON(payload []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return err
	}

	envelope := map[string]any{
		"$id":           &d.ID,
		"$collectionId": &d.CollectionID,
		"$createdAt":    &d.CreatedAt,
		"$updatedAt":    &d.UpdatedAt,
	}
	for key, target := range envelope {
		if value, ok := raw[key]; ok {
			if err := json.Unmarshal(value, target); err != nil {
				return err
			}
		}
	}

	d.Data = make(map[string]any, len(raw))
	for key, value := range raw {
		var attr any
		if err := json.Unmarshal(value, &attr); err != nil {
			return err
		}
		d.Data[key] = attr
	}

	return nil
}

// String returns the named Data attribute as a string, or "" if the
// attribute is absent or has a different type.
func (d Document) String(attr string) string {
	v, _ := d.Data[attr].(string)
	return v
}

// Child returns the named Data attribute as a nested document, handling the
// expanded-relation form the backend uses for references. The second return
// value is false when the relation is absent or dangling.
func (d Document) Child(attr string) (Document, bool) {
	raw, ok := d.Data[attr].(map[string]any)
	if !ok {
		return Document{}, false
	}

	child := Document{Data: raw}
	if id, ok := raw["$id"].(string); ok {
		child.ID = id
	}
	if ts, ok := raw["$createdAt"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			child.CreatedAt = parsed
		}
	}

	return child, child.ID != ""
}

// File describes an object stored in a blob storage bucket.
type File struct {
	ID       string `json:"$id"`
	BucketID string `json:"bucketId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}
