package jsonplaceholder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/louisbranch/postboard/internal/platform/timeouts"
	"github.com/louisbranch/postboard/internal/posts"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is the public JSONPlaceholder endpoint.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultReadRetries is how many times a failed read is retried.
const DefaultReadRetries = 2

const maxResponseBytes = 4 << 20

// Op names one client operation in errors and logs.
type Op string

const (
	OpListPosts  Op = "list posts"
	OpGetPost    Op = "get post"
	OpCreatePost Op = "create post"
	OpUpdatePost Op = "update post"
	OpDeletePost Op = "delete post"
)

// RequestError reports a failed upstream call.
type RequestError struct {
	Op         Op
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("jsonplaceholder %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("jsonplaceholder %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Client calls the posts endpoints of a JSONPlaceholder-compatible API.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	readRetries uint
	newBackOff  func() backoff.BackOff
	logf        func(format string, args ...any)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the traced default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithReadRetries sets how many times reads are retried after the first attempt.
func WithReadRetries(retries uint) Option {
	return func(c *Client) { c.readRetries = retries }
}

// WithBackOff sets the retry delay policy; each read gets a fresh policy.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		if newBackOff != nil {
			c.newBackOff = newBackOff
		}
	}
}

// WithLogger routes client diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logf = logger.Printf
		}
	}
}

// New builds a client for baseURL. A blank baseURL uses DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("base url %q has no host", baseURL)
	}
	c := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		readRetries: DefaultReadRetries,
		newBackOff: func() backoff.BackOff {
			policy := backoff.NewExponentialBackOff()
			policy.InitialInterval = 300 * time.Millisecond
			policy.MaxInterval = 2 * time.Second
			return policy
		},
		logf: log.Printf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListPosts fetches every post. A payload that is not a JSON array is
// treated as an empty collection.
func (c *Client) ListPosts(ctx context.Context) ([]posts.Post, error) {
	return retryRead(ctx, c, OpListPosts, func(ctx context.Context) ([]posts.Post, error) {
		data, err := c.do(ctx, OpListPosts, http.MethodGet, "/posts", nil)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
			return []posts.Post{}, nil
		}
		var out []posts.Post
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, backoff.Permanent(&RequestError{Op: OpListPosts, Err: fmt.Errorf("decode posts: %w", err)})
		}
		if out == nil {
			out = []posts.Post{}
		}
		return out, nil
	})
}

// GetPost fetches one post. It fails with posts.ErrInvalidID before any
// request for non-positive ids and with posts.ErrNotFound on 404.
func (c *Client) GetPost(ctx context.Context, id int) (posts.Post, error) {
	if !posts.ValidID(id) {
		return posts.Post{}, posts.ErrInvalidID
	}
	return retryRead(ctx, c, OpGetPost, func(ctx context.Context) (posts.Post, error) {
		data, err := c.do(ctx, OpGetPost, http.MethodGet, postPath(id), nil)
		if err != nil {
			return posts.Post{}, err
		}
		return decodePost(OpGetPost, data)
	})
}

// CreatePost submits a new post and returns the API's echo of it.
func (c *Client) CreatePost(ctx context.Context, in posts.CreateInput) (posts.Post, error) {
	normalized, err := posts.NormalizeCreate(in)
	if err != nil {
		return posts.Post{}, err
	}
	data, err := c.doJSON(ctx, OpCreatePost, http.MethodPost, "/posts", normalized)
	if err != nil {
		return posts.Post{}, err
	}
	return decodePost(OpCreatePost, data)
}

// UpdatePost replaces a post and returns the API's echo of it.
func (c *Client) UpdatePost(ctx context.Context, in posts.UpdateInput) (posts.Post, error) {
	normalized, err := posts.NormalizeUpdate(in)
	if err != nil {
		return posts.Post{}, err
	}
	data, err := c.doJSON(ctx, OpUpdatePost, http.MethodPut, postPath(normalized.ID), normalized)
	if err != nil {
		return posts.Post{}, err
	}
	return decodePost(OpUpdatePost, data)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	if !posts.ValidID(id) {
		return posts.ErrInvalidID
	}
	_, err := c.do(ctx, OpDeletePost, http.MethodDelete, postPath(id), nil)
	return unwrapPermanent(err)
}

func postPath(id int) string {
	return "/posts/" + strconv.Itoa(id)
}

func decodePost(op Op, data []byte) (posts.Post, error) {
	if !gjson.ValidBytes(data) {
		return posts.Post{}, backoff.Permanent(&RequestError{Op: op, Err: posts.ErrInvalidData})
	}
	if id := gjson.GetBytes(data, "id"); !id.Exists() || id.Int() <= 0 {
		return posts.Post{}, backoff.Permanent(&RequestError{Op: op, Err: posts.ErrInvalidData})
	}
	var post posts.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return posts.Post{}, backoff.Permanent(&RequestError{Op: op, Err: fmt.Errorf("%w: %v", posts.ErrInvalidData, err)})
	}
	return post, nil
}

func (c *Client) doJSON(ctx context.Context, op Op, method, path string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, &RequestError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}
	data, err := c.do(ctx, op, method, path, encoded)
	return data, unwrapPermanent(err)
}

// do performs one HTTP round trip. Failures that retrying cannot fix are
// wrapped with backoff.Permanent.
func (c *Client) do(ctx context.Context, op Op, method, path string, payload []byte) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.UpstreamRequest)
	defer cancel()

	endpoint := c.baseURL.JoinPath(path)
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return nil, backoff.Permanent(&RequestError{Op: op, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &RequestError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(&RequestError{Op: op, StatusCode: resp.StatusCode, Err: posts.ErrNotFound})
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RequestError{Op: op, StatusCode: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, backoff.Permanent(&RequestError{Op: op, StatusCode: resp.StatusCode})
	}
	return data, nil
}

func retryRead[T any](ctx context.Context, c *Client, op Op, read func(context.Context) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := backoff.Retry(ctx,
		func() (T, error) { return read(ctx) },
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(c.readRetries+1),
		backoff.WithMaxElapsedTime(timeouts.UpstreamRetryWindow),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.logf("jsonplaceholder retry op=%q wait=%s err=%v", op, wait, err)
		}),
	)
	return result, unwrapPermanent(err)
}

// unwrapPermanent drops the retry marker so callers see the underlying error.
func unwrapPermanent(err error) error {
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Unwrap()
	}
	return err
}
