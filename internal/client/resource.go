package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

var validate = validator.New()

// ResourceClient implements the operations shared by every resource:
// T is the model, C/U the create/update bodies and L the list parameters.
type ResourceClient[T any, C any, U any, L treasury.ListParams[L]] struct {
	httpClient *internalhttp.Client
	basePath   string
	singular   string
	plural     string
}

// NewResourceClient creates a resource client rooted at basePath, e.g. "/api/counterparties".
func NewResourceClient[T any, C any, U any, L treasury.ListParams[L]](
	httpClient *internalhttp.Client, basePath, singular, plural string,
) *ResourceClient[T, C, U, L] {
	return &ResourceClient[T, C, U, L]{
		httpClient: httpClient,
		basePath:   basePath,
		singular:   singular,
		plural:     plural,
	}
}

func (c *ResourceClient[T, C, U, L]) resourcePath(id string) string {
	return c.basePath + "/" + url.PathEscape(id)
}

// Create posts params and returns the created object.
func (c *ResourceClient[T, C, U, L]) Create(ctx context.Context, params *C) (*T, error) {
	if params == nil {
		return nil, fmt.Errorf("creating %s: %w", c.singular, treasury.ErrRequestValidationFailed)
	}

	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.singular, err)
	}

	var result T

	err = c.do(ctx, newRequest(http.MethodPost, c.basePath, params), &result)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.singular, err)
	}

	return &result, nil
}

// Retrieve fetches one object by ID.
func (c *ResourceClient[T, C, U, L]) Retrieve(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("retrieving %s: %w", c.singular, treasury.ErrMissingIDParameter)
	}

	var result T

	err := c.do(ctx, &internalhttp.Request{Method: http.MethodGet, Path: c.resourcePath(id)}, &result)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s: %w", c.singular, err)
	}

	return &result, nil
}

// Update patches the object with params.
func (c *ResourceClient[T, C, U, L]) Update(ctx context.Context, id string, params *U) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("updating %s: %w", c.singular, treasury.ErrMissingIDParameter)
	}

	err := validateParams(params)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.singular, err)
	}

	var result T

	err = c.do(ctx, newRequest(http.MethodPatch, c.resourcePath(id), params), &result)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.singular, err)
	}

	return &result, nil
}

// Delete removes the object.
func (c *ResourceClient[T, C, U, L]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("deleting %s: %w", c.singular, treasury.ErrMissingIDParameter)
	}

	err := c.do(ctx, &internalhttp.Request{Method: http.MethodDelete, Path: c.resourcePath(id)}, nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.singular, err)
	}

	return nil
}

// List fetches the first page matching params. Later pages are fetched
// through the returned page.
func (c *ResourceClient[T, C, U, L]) List(ctx context.Context, params *L) (*treasury.Page[T, L], error) {
	var p L
	if params != nil {
		p = *params
	}

	return c.listPage(ctx, p)
}

func (c *ResourceClient[T, C, U, L]) listPage(ctx context.Context, params L) (*treasury.Page[T, L], error) {
	query, err := params.ToValues()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	req := &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    c.basePath,
		Query:   query,
		Headers: flattenHeaders(params.GetRequestOptions().AdditionalHeaders),
		List:    true,
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	list, err := decodeList[T](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.plural, err)
	}

	return treasury.NewPage(list, params, c.listPage), nil
}

// action calls a sub-resource endpoint such as /{id}/verify.
func (c *ResourceClient[T, C, U, L]) action(ctx context.Context, method, id, verb string, params any, out any) error {
	if id == "" {
		return treasury.ErrMissingIDParameter
	}

	err := validateParams(params)
	if err != nil {
		return err
	}

	return c.do(ctx, newRequest(method, c.resourcePath(id)+"/"+verb, params), out)
}

func (c *ResourceClient[T, C, U, L]) do(ctx context.Context, req *internalhttp.Request, out any) error {
	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w", c.singular, err)
	}

	return nil
}

// newRequest builds a request carrying params as the JSON body together with
// the additional query parameters, headers and idempotency key it holds.
func newRequest(method, path string, params any) *internalhttp.Request {
	req := &internalhttp.Request{Method: method, Path: path}

	if isNil(params) {
		return req
	}

	req.Body = params

	if provider, ok := params.(treasury.RequestOptionsProvider); ok {
		opts := provider.GetRequestOptions()
		req.Query = opts.AdditionalQueryParams
		req.Headers = flattenHeaders(opts.AdditionalHeaders)
		req.IdempotencyKey = opts.IdempotencyKey
	}

	return req
}

func isNil(params any) bool {
	if params == nil {
		return true
	}

	v := reflect.ValueOf(params)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func validateParams(params any) error {
	if isNil(params) {
		return nil
	}

	err := validate.Struct(params)
	if err != nil {
		return treasury.NewValidationError(err)
	}

	return nil
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return nil
	}

	flat := make(map[string]string, len(headers))
	for key := range headers {
		flat[key] = headers.Get(key)
	}

	return flat
}

// decodeList accepts both the {"items": [...]} envelope and a bare JSON
// array. Cursor and page size fall back to response headers when the body
// does not carry them.
func decodeList[T any](resp *internalhttp.Response) (*treasury.ListResponse[T], error) {
	var list treasury.ListResponse[T]

	body := bytes.TrimSpace(resp.Body)

	switch {
	case len(body) == 0:
	case body[0] == '[':
		err := json.Unmarshal(body, &list.Items)
		if err != nil {
			return nil, err
		}
	default:
		err := json.Unmarshal(body, &list)
		if err != nil {
			return nil, err
		}
	}

	if list.AfterCursor.IsMissing() {
		if cursor := resp.Headers.Get(constants.HeaderAfterCursor); cursor != "" {
			list.AfterCursor = treasury.F(cursor)
		}
	}

	if list.PerPage.IsMissing() {
		if perPage := resp.Headers.Get(constants.HeaderPerPage); perPage != "" {
			list.PerPage = treasury.F(perPage)
		}
	}

	return &list, nil
}
