package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// FieldChange is one top-level key whose stored value changed.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// applyPatch overlays the patch keys onto current's JSON form and decodes the
// result into a new value. Keys in protected are never taken from the patch.
// Each top-level key is replaced whole; nested objects are not deep-merged.
func applyPatch[T any](current *T, patch Patch, protected ...string) (*T, []FieldChange, error) {
	before, err := jsonFields(current)
	if err != nil {
		return nil, nil, err
	}

	skip := make(map[string]bool, len(protected))
	for _, key := range protected {
		skip[key] = true
	}

	merged := make(map[string]json.RawMessage, len(before))
	for k, v := range before {
		merged[k] = v
	}
	keys := make([]string, 0, len(patch))
	for k, v := range patch {
		if skip[k] {
			continue
		}
		merged[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode merged document: %w", err)
	}
	next := new(T)
	if err := json.Unmarshal(raw, next); err != nil {
		return nil, nil, err
	}

	after, err := jsonFields(next)
	if err != nil {
		return nil, nil, err
	}
	var changes []FieldChange
	for _, k := range keys {
		newValue, known := after[k]
		if !known || bytes.Equal(before[k], newValue) {
			continue
		}
		changes = append(changes, FieldChange{Field: k, OldValue: string(before[k]), NewValue: string(newValue)})
	}
	return next, changes, nil
}

func jsonFields(v interface{}) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return fields, nil
}
