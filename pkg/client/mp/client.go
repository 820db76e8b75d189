// Package mp is the Go client for the content-center HTTP API.
//
// The client owns a single session: at most one bearer token, attached to
// every outgoing call, persisted in one well-known file slot, and cleared
// the moment the server answers 401. Expiry recovery is an explicit
// callback; the client never retries the original call on its own.
package mp

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kart-io/content-center/pkg/utils/errors"
	"github.com/kart-io/content-center/pkg/utils/json"
)

// DefaultTimeout is the fixed upper bound on any outgoing call.
const DefaultTimeout = 5 * time.Second

// Client is a session-holding client for the content-center API.
//
// All methods are safe for concurrent use; writes to the session token are
// serialized so a fresh login cannot race an in-flight expiry eviction.
type Client struct {
	baseURL   string
	http      *http.Client
	tokenFile string

	mu      sync.Mutex
	token   string
	profile *Profile

	onUnauthenticated []func()
}

// ClientOption is a functional option for Client.
type ClientOption func(*Client)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTokenFile sets the file slot the session token is persisted in.
// An empty path disables persistence.
func WithTokenFile(path string) ClientOption {
	return func(c *Client) {
		c.tokenFile = path
	}
}

// OnUnauthenticated registers a callback fired when the server rejects
// the session. The presentation layer subscribes here to redirect to its
// login entry point.
func OnUnauthenticated(fn func()) ClientOption {
	return func(c *Client) {
		c.onUnauthenticated = append(c.onUnauthenticated, fn)
	}
}

// NewClient creates a client for the API at baseURL. A token previously
// persisted in the token file slot is picked up automatically.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tokenFile != "" {
		if raw, err := os.ReadFile(c.tokenFile); err == nil {
			c.token = strings.TrimSpace(string(raw))
		}
	}

	return c
}

// Token returns the current session token, or "" when logged out.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Login exchanges credentials for a session token and stores it.
// On failure the session is left untouched.
func (c *Client) Login(ctx context.Context, identifier, code string) error {
	body := map[string]string{"mobile": identifier, "code": code}

	var env tokenEnvelope
	if err := c.do(ctx, http.MethodPost, "/authorizations", body, &env); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = env.Token
	c.profile = nil
	c.persistTokenLocked()
	return nil
}

// Logout clears the session token and its persisted copy.
func (c *Client) Logout() {
	c.clearSession()
}

// Profile returns the authenticated user's profile, fetching it lazily
// on first use and caching it for the session's lifetime.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	c.mu.Lock()
	if c.profile != nil {
		cached := *c.profile
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	var env profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &env); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profile = &env.Data
	c.mu.Unlock()

	result := env.Data
	return &result, nil
}

// Channels returns the channel reference list.
func (c *Client) Channels(ctx context.Context) ([]Channel, error) {
	var env channelsEnvelope
	if err := c.do(ctx, http.MethodGet, "/channels", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateArticle submits a new article. The draft flag mirrors the admin
// client's save-vs-publish choice.
func (c *Client) CreateArticle(ctx context.Context, article *Article, draft bool) (*Article, error) {
	var env articleEnvelope
	path := "/mp/articles?draft=" + strconv.FormatBool(draft)
	if err := c.do(ctx, http.MethodPost, path, article, &env); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

// UpdateArticle applies a partial update to the article with the given id.
// Zero-valued fields of the patch are not sent and stay untouched.
func (c *Client) UpdateArticle(ctx context.Context, id string, patch *Article, draft bool) (*Article, error) {
	var env articleEnvelope
	path := "/mp/articles/" + url.PathEscape(id) + "?draft=" + strconv.FormatBool(draft)
	if err := c.do(ctx, http.MethodPut, path, patch, &env); err != nil {
		return nil, err
	}
	return &env.Article, nil
}

// GetArticle fetches one article by id.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	var env articleDataEnvelope
	if err := c.do(ctx, http.MethodGet, "/mp/articles/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListArticles fetches a filtered, paginated article listing.
func (c *Client) ListArticles(ctx context.Context, opts ListArticlesOptions) (*ArticlePage, error) {
	query := url.Values{}
	if opts.Status != nil {
		query.Set("status", strconv.Itoa(*opts.Status))
	}
	if opts.ChannelID != "" {
		query.Set("channel_id", opts.ChannelID)
	}
	if opts.BeginPubdate != "" {
		query.Set("begin_pubdate", opts.BeginPubdate)
	}
	if opts.EndPubdate != "" {
		query.Set("end_pubdate", opts.EndPubdate)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	path := "/mp/articles"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var env pageEnvelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// DeleteArticle removes one article by id.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	var env messageEnvelope
	return c.do(ctx, http.MethodDelete, "/mp/articles/"+url.PathEscape(id), nil, &env)
}

// Upload sends a single image file and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy upload payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var env fileEnvelope
	if err := c.send(req, &env); err != nil {
		return "", err
	}
	return env.FileURL, nil
}

// do builds a JSON request, attaches the session token, and decodes the
// response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send attaches the token, executes the request, and handles the two
// session-affecting outcomes: timeouts (distinct error, session kept) and
// 401 (session cleared, subscribers notified).
func (c *Client) send(req *http.Request, out interface{}) error {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return errors.ErrRequestTimeout.WithCause(err)
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.clearSession()
		return errors.ErrUnauthenticated
	}

	if resp.StatusCode >= 400 {
		var env messageEnvelope
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &env) == nil && env.Msg != "" {
			msg = env.Msg
		}
		return errnoForStatus(resp.StatusCode).WithMessage(msg)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// clearSession drops the token, its persisted copy, and the cached
// profile, then notifies subscribers. This is the single recovery path
// for an expired or invalid session.
func (c *Client) clearSession() {
	c.mu.Lock()
	c.token = ""
	c.profile = nil
	if c.tokenFile != "" {
		_ = os.Remove(c.tokenFile)
	}
	c.mu.Unlock()

	for _, fn := range c.onUnauthenticated {
		fn()
	}
}

// persistTokenLocked writes the token to the file slot. Caller holds mu.
func (c *Client) persistTokenLocked() {
	if c.tokenFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.tokenFile), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(c.tokenFile, []byte(c.token), 0o600)
}

func errnoForStatus(status int) *errors.Errno {
	switch status {
	case http.StatusBadRequest:
		return errors.ErrBadRequest
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusGatewayTimeout:
		return errors.ErrRequestTimeout
	default:
		return errors.ErrInternal
	}
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return stderrors.As(err, &urlErr) && urlErr.Timeout()
}
