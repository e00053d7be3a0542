// Package backend is the typed client boundary to the upstream resource API.
// Every method validates the payload shape before trusting any field; a
// malformed success payload is treated the same as a rejection.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/pkg/config"
	appErrors "github.com/noah-isme/resource-hub-web/pkg/errors"
)

// Client talks to the upstream API over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewClient builds a Client with a tuned transport.
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := &http.Transport{
		MaxIdleConns:       20,
		IdleConnTimeout:    30 * time.Second,
		DisableCompression: false,
	}
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// HTTPClient exposes the underlying client for the proxy layer, which shares
// the same transport and timeout discipline.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type loginPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Login exchanges credentials for a user and bearer token. A non-success
// status or a success payload missing `user` or `token` both yield
// (nil, nil): "no session created", not an error. Transport failures are
// errors so the caller can distinguish "bad credentials" from "backend down".
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode login payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build login request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "login request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		drain(res.Body)
		return nil, nil
	}

	var payload loginPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		c.logger.Warn("login response is not valid JSON", zap.Error(err))
		return nil, nil
	}
	if payload.User == nil || payload.Token == "" {
		c.logger.Warn("login response missing user or token")
		return nil, nil
	}

	return &models.LoginResult{User: *payload.User, Token: payload.Token}, nil
}

// Me fetches the current user's profile with the session's bearer token.
// Best-effort: any failure degrades to (nil, nil). This feeds a banner, not
// an authorization decision.
func (c *Client) Me(ctx context.Context, bearer string) (*models.User, error) {
	if bearer == "" {
		return nil, nil
	}

	var user models.User
	if ok := c.getJSON(ctx, "/api/v1/auth/me", "", bearer, &user); !ok {
		return nil, nil
	}
	return &user, nil
}

// Departments lists departments. Failures return an error; whether that is
// fatal is the caller's call (hard for department pages, soft for sidebars).
func (c *Client) Departments(ctx context.Context, bearer string) ([]models.Department, error) {
	var departments []models.Department
	if err := c.getJSONErr(ctx, "/api/v1/departments", "", bearer, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// Department fetches one department by slug. A 404 surfaces as ErrNotFound.
func (c *Client) Department(ctx context.Context, bearer, slug string) (*models.Department, error) {
	var department models.Department
	path := "/api/v1/departments/" + url.PathEscape(slug)
	if err := c.getJSONErr(ctx, path, "", bearer, &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// Resources lists resources with the given query (department, category,
// level, sort, limit) forwarded unmodified.
func (c *Client) Resources(ctx context.Context, bearer string, query url.Values) ([]models.Resource, error) {
	var resources []models.Resource
	if err := c.getJSONErr(ctx, "/api/v1/resources", query.Encode(), bearer, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *Client) getJSON(ctx context.Context, path, rawQuery, bearer string, out interface{}) bool {
	return c.getJSONErr(ctx, path, rawQuery, bearer, out) == nil
}

func (c *Client) getJSONErr(ctx context.Context, path, rawQuery, bearer string, out interface{}) error {
	target := c.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build upstream request")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "upstream request failed")
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		drain(res.Body)
		return appErrors.ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		drain(res.Body)
		return appErrors.New("UPSTREAM_ERROR", res.StatusCode, fmt.Sprintf("upstream returned status %d", res.StatusCode))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to decode upstream response")
	}
	return nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 1<<16))
}
