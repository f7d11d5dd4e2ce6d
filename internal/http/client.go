package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/treasury-client/internal/auth"
	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// Client is the HTTP transport shared by every resource client.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	credentials  auth.CredentialProvider
	userAgent    string
	logger       treasury.Logger
	debug        bool
	interceptors *treasury.InterceptorChain
	cache        *treasury.CacheManager
	cachePolicy  *treasury.CachingPolicy
}

// Option configures a Client.
type Option func(*Client)

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	// IdempotencyKey overrides the generated key of a POST.
	IdempotencyKey string
	// List marks paginated requests; they bypass the cache unless the
	// policy allows lists.
	List bool
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Cached     bool
}

// NewClient creates a transport for baseURL. A nil credentials provider sends
// unauthenticated requests.
func NewClient(baseURL string, credentials auth.CredentialProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		credentials:  credentials,
		userAgent:    constants.DefaultUserAgent,
		interceptors: treasury.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
		retryClient.RequestLogHook = client.logRetry
	}

	return client
}

// WithLogger sets the logger.
func WithLogger(logger treasury.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig sets the retry limits. Zero values keep the defaults and a
// negative retryMax disables retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax != 0 {
			c.httpClient.RetryMax = max(retryMax, 0)
		}

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout sets the timeout of each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *treasury.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// WithCache enables response caching.
func WithCache(manager *treasury.CacheManager, policy *treasury.CachingPolicy) Option {
	return func(c *Client) {
		c.cache = manager
		c.cachePolicy = policy

		if c.cachePolicy == nil {
			c.cachePolicy = treasury.DefaultCachingPolicy()
		}
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do performs req. A non-2xx status is returned as *treasury.APIError
// together with the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		var err error

		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	intercepted := &treasury.Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   req.Query,
		Headers: make(http.Header),
		Body:    body,
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	if req.Method == http.MethodPost {
		key := req.IdempotencyKey
		if key == "" {
			key = uuid.NewString()
		}

		intercepted.Headers.Set(constants.HeaderIdempotencyKey, key)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	cacheKey, cacheable := c.cacheKey(req, intercepted.Query)
	if cacheable {
		data, cacheErr := c.cache.Get(ctx, cacheKey)
		if cacheErr == nil {
			return &Response{StatusCode: http.StatusOK, Headers: make(http.Header), Body: data, Cached: true}, nil
		}
	}

	resp, err := c.send(ctx, intercepted)

	result := &treasury.Response{Error: err}
	if resp != nil {
		result.StatusCode = resp.StatusCode
		result.Headers = resp.Headers
		result.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, result)
	if err != nil {
		return nil, err
	}

	if interceptErr != nil {
		return resp, interceptErr
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, treasury.ParseAPIError(resp.StatusCode, resp.Body)
	}

	c.updateCache(ctx, req, cacheKey, cacheable, resp)

	return resp, nil
}

func (c *Client) send(ctx context.Context, req *treasury.Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range req.Headers {
		httpReq.Header[key] = values
	}

	err = auth.Apply(ctx, c.credentials, httpReq.Request)
	if err != nil {
		return nil, fmt.Errorf("applying credentials: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      fullURL,
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}, nil
}

func (c *Client) cacheKey(req *Request, query url.Values) (string, bool) {
	if c.cache == nil || req.Method != http.MethodGet {
		return "", false
	}

	var allowed bool
	if req.List {
		allowed = c.cachePolicy.ShouldCacheList(req.Method, req.Path, http.StatusOK)
	} else {
		allowed = c.cachePolicy.ShouldCache(req.Method, req.Path, http.StatusOK)
	}

	if !allowed {
		return "", false
	}

	params := make(map[string]string, len(query))
	for key, values := range query {
		params[key] = strings.Join(values, ",")
	}

	return c.cache.GetCacheKey(req.Method, req.Path, params), true
}

func (c *Client) updateCache(ctx context.Context, req *Request, key string, cacheable bool, resp *Response) {
	if c.cache == nil {
		return
	}

	if cacheable {
		err := c.cache.SetWithETag(ctx, key, resp.Body, resp.Headers.Get("ETag"), c.cachePolicy.TTL)
		if err != nil {
			c.warn("cache write failed", err)
		}

		return
	}

	if req.Method == http.MethodGet {
		return
	}

	// An action on /x/{id}/verb changes /x/{id} as well.
	for target := req.Path; target != "/" && target != "."; target = path.Dir(target) {
		err := c.cache.Invalidate(ctx, c.cache.GetCacheKey(http.MethodGet, target, nil))
		if err != nil {
			c.warn("cache invalidation failed", err)
		}
	}
}

func (c *Client) warn(msg string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	c.logger.Warn("Retrying HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// leveledLogger bridges retryablehttp warnings and errors to treasury.Logger.
// Its per-attempt debug chatter is dropped in favor of logRetry.
type leveledLogger struct {
	logger treasury.Logger
}

func keyValues(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keyValues(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keyValues(keysAndValues))
}
