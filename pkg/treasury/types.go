package treasury

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fivetwenty-io/treasury-client/internal/apijson"
)

// Resource holds the attributes every API object carries.
type Resource struct {
	ID        string    `json:"id"         yaml:"id"`
	Object    string    `json:"object"     yaml:"object"`
	LiveMode  bool      `json:"live_mode"  yaml:"live_mode"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// GetID returns the object ID.
func (r Resource) GetID() string {
	return r.ID
}

// Metadata holds caller-defined string key/value pairs.
type Metadata map[string]string

// ExtraFields holds object keys returned by the API that this package does
// not model. They are re-emitted when the object is encoded.
type ExtraFields map[string]json.RawMessage

// RequestOptions is embedded in every params struct. Additional query
// parameters and headers are merged into the outgoing request; typed
// parameters win on key clashes.
type RequestOptions struct {
	AdditionalQueryParams url.Values  `json:"-" schema:"-" yaml:"-"`
	AdditionalHeaders     http.Header `json:"-" schema:"-" yaml:"-"`
	// IdempotencyKey overrides the generated Idempotency-Key of a POST.
	IdempotencyKey string `json:"-" schema:"-" yaml:"-"`
}

// GetRequestOptions returns the embedded options.
func (o RequestOptions) GetRequestOptions() RequestOptions {
	return o
}

// RequestOptionsProvider is implemented by every params struct.
type RequestOptionsProvider interface {
	GetRequestOptions() RequestOptions
}

func unmarshalWithExtras(data []byte, dst any, extra *ExtraFields) error {
	fields, err := apijson.UnmarshalObject(data, dst)
	if err != nil {
		return fmt.Errorf("%T: %w", dst, err)
	}

	*extra = fields

	return nil
}

func marshalWithExtras(src any, extra ExtraFields) ([]byte, error) {
	data, err := apijson.MarshalObject(src, extra)
	if err != nil {
		return nil, fmt.Errorf("%T: %w", src, err)
	}

	return data, nil
}
