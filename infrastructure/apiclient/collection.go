package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	"web3admin/models"
)

// Collection is the normalized result of every list endpoint.
type Collection struct {
	Items []models.Record
	Total int
}

// NormalizeCollection accepts the shapes list endpoints are known to return:
// a bare array, an object carrying the items under field (plus an optional
// "total"), or null.
func NormalizeCollection(data json.RawMessage, field string) (Collection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Collection{Items: []models.Record{}}, nil
	}

	switch trimmed[0] {
	case '[':
		items, err := decodeRecords(trimmed)
		if err != nil {
			return Collection{}, err
		}
		return Collection{Items: items, Total: len(items)}, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return Collection{}, fmt.Errorf("decode collection object: %w", err)
		}
		items := []models.Record{}
		if raw, ok := obj[field]; ok && field != "" {
			var err error
			if items, err = decodeRecords(raw); err != nil {
				return Collection{}, err
			}
		}
		total := len(items)
		if raw, ok := obj["total"]; ok {
			var n float64
			if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
				total = int(n)
			}
		}
		return Collection{Items: items, Total: total}, nil
	default:
		return Collection{}, fmt.Errorf("unexpected collection shape starting with %q", trimmed[0])
	}
}

func decodeRecords(raw json.RawMessage) ([]models.Record, error) {
	items := []models.Record{}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return items, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode collection items: %w", err)
	}
	return items, nil
}

// DecodeRecord decodes a single object, keeping numbers as written.
func DecodeRecord(raw json.RawMessage) (models.Record, error) {
	rec := models.Record{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
