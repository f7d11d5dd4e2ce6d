// Package apiquery flattens typed list parameters into URL query values.
package apiquery

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/gorilla/schema"
)

var encoder = schema.NewEncoder()

// Encode flattens params (a struct or pointer to struct using `schema` tags)
// on top of additional. Typed parameters replace additional values that
// share their key; every other additional value is kept.
func Encode(params any, additional url.Values) (url.Values, error) {
	values := url.Values{}

	for key, vals := range additional {
		values[key] = append([]string(nil), vals...)
	}

	typed := map[string][]string{}

	err := encoder.Encode(params, typed)
	if err != nil {
		return nil, fmt.Errorf("encoding query parameters: %w", err)
	}

	for key, vals := range typed {
		values[key] = vals
	}

	return values, nil
}

// AddMap writes m as bracketed keys, e.g. metadata[key]=value, in key order.
func AddMap(values url.Values, prefix string, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		values.Set(fmt.Sprintf("%s[%s]", prefix, k), m[k])
	}
}
