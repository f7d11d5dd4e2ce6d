// Package apijson decodes and encodes API objects while keeping object keys
// that the Go type does not declare, so that payloads survive a round trip.
package apijson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var knownKeysCache sync.Map // reflect.Type -> map[string]struct{}

// UnmarshalObject decodes data into dst, which must be a pointer to a struct
// type without its own UnmarshalJSON, and returns the keys of data that dst
// does not declare. It returns a nil map when there are none.
func UnmarshalObject(data []byte, dst any) (map[string]json.RawMessage, error) {
	err := json.Unmarshal(data, dst)
	if err != nil {
		return nil, fmt.Errorf("decoding object: %w", err)
	}

	var all map[string]json.RawMessage

	err = json.Unmarshal(data, &all)
	if err != nil {
		return nil, fmt.Errorf("decoding object keys: %w", err)
	}

	known := KnownKeys(reflect.TypeOf(dst))

	var extra map[string]json.RawMessage

	for key, raw := range all {
		if _, ok := known[key]; ok {
			continue
		}

		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}

		extra[key] = raw
	}

	return extra, nil
}

// MarshalObject encodes src and adds the extra keys that src does not already emit.
func MarshalObject(src any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("encoding object: %w", err)
	}

	if len(extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage

	err = json.Unmarshal(data, &merged)
	if err != nil {
		return nil, fmt.Errorf("re-reading encoded object: %w", err)
	}

	for key, raw := range extra {
		if _, ok := merged[key]; !ok {
			merged[key] = raw
		}
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding merged object: %w", err)
	}

	return out, nil
}

// KnownKeys returns the JSON object keys declared by a struct type, following
// embedded structs the way encoding/json does.
func KnownKeys(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if cached, ok := knownKeysCache.Load(t); ok {
		keys, _ := cached.(map[string]struct{})

		return keys
	}

	keys := make(map[string]struct{})
	collectKeys(t, keys)
	knownKeysCache.Store(t, keys)

	return keys
}

func collectKeys(t reflect.Type, keys map[string]struct{}) {
	if t.Kind() != reflect.Struct {
		return
	}

	for i := range t.NumField() {
		field := t.Field(i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")

		if field.Anonymous && name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}

			collectKeys(ft, keys)

			continue
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		keys[name] = struct{}{}
	}
}
