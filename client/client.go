// Package client is a Go consumer of the events API. It owns the
// session guard: tokens obtained at login are persisted in a Store,
// attached to every request, and dropped the moment the server
// rejects them, so a stale session can never keep issuing
// authenticated calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	zlog "github.com/rs/zerolog/log"
)

// ErrTokenMissingInResponse is returned by Login when the server
// answered 200 without a token payload.
var ErrTokenMissingInResponse = errors.New("Token ausente na resposta")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the events API on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	// onUnauthorized runs after a 401/403 response has cleared the
	// session, typically to send the caller back to a login flow.
	onUnauthorized func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithUnauthorizedHook registers the callback invoked when the server
// rejects the stored credentials.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, store Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: NewSession(store),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Session exposes the guard state for callers that render UI from it.
func (c *Client) Session() *Session { return c.session }

// Login authenticates and stores the issued credentials.
func (c *Client) Login(ctx context.Context, email, password string) (SessionUser, error) {
	var out struct {
		Token string      `json:"token"`
		User  SessionUser `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return SessionUser{}, err
	}
	if out.Token == "" {
		return SessionUser{}, ErrTokenMissingInResponse
	}
	if err := c.session.Save(out.Token, out.User); err != nil {
		return SessionUser{}, err
	}
	return out.User, nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, email, password, role string) error {
	body := map[string]string{"email": email, "password": password}
	if role != "" {
		body["role"] = role
	}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Logout drops the stored credentials. Tokens are stateless, so there
// is nothing to revoke server side.
func (c *Client) Logout() { c.session.Clear() }

// Event mirrors the API event payload.
type Event struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Volunteers   string     `json:"volunteers"`
	VolunteerIDs []int64    `json:"volunteer_ids,omitempty"`
}

// EventInput is the mutation payload for events.
type EventInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	VolunteerIDs []int64    `json:"volunteer_ids"`
}

// Volunteer mirrors the API volunteer payload.
type Volunteer struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email"`
}

// VolunteerInput is the mutation payload for volunteers.
type VolunteerInput struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	err := c.do(ctx, http.MethodGet, "/events", nil, &out)
	return out, err
}

func (c *Client) GetEvent(ctx context.Context, id int64) (Event, error) {
	var out Event
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (Event, error) {
	var out struct {
		Event Event `json:"event"`
	}
	err := c.do(ctx, http.MethodPost, "/protected/events", in, &out)
	return out.Event, err
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, in EventInput) (Event, error) {
	var out struct {
		Event Event `json:"event"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/protected/events/%d", id), in, &out)
	return out.Event, err
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/protected/events/%d", id), nil, nil)
}

func (c *Client) ListVolunteers(ctx context.Context) ([]Volunteer, error) {
	var out struct {
		Volunteers []Volunteer `json:"volunteers"`
	}
	err := c.do(ctx, http.MethodGet, "/protected/volunteers", nil, &out)
	return out.Volunteers, err
}

func (c *Client) GetVolunteer(ctx context.Context, id int64) (Volunteer, error) {
	var out struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/protected/volunteers/%d", id), nil, &out)
	return out.Volunteer, err
}

func (c *Client) CreateVolunteer(ctx context.Context, in VolunteerInput) (Volunteer, error) {
	var out struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := c.do(ctx, http.MethodPost, "/protected/volunteers", in, &out)
	return out.Volunteer, err
}

func (c *Client) UpdateVolunteer(ctx context.Context, id int64, in VolunteerInput) (Volunteer, error) {
	var out struct {
		Volunteer Volunteer `json:"volunteer"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/protected/volunteers/%d", id), in, &out)
	return out.Volunteer, err
}

func (c *Client) DeleteVolunteer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/protected/volunteers/%d", id), nil, nil)
}

// Dashboard fetches the greeting of the authenticated area.
func (c *Client) Dashboard(ctx context.Context) (string, error) {
	return c.message(ctx, "/protected/dashboard")
}

// Admin fetches the greeting of the admin area.
func (c *Client) Admin(ctx context.Context) (string, error) {
	return c.message(ctx, "/protected/admin")
}

func (c *Client) message(ctx context.Context, path string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Message, err
}

// do runs one request: marshals the body, attaches the bearer token
// when one is stored, and decodes either the result or the error
// envelope. A 401/403 answer clears the session before returning.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.handleRejected(resp.StatusCode, path)
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) handleRejected(status int, path string) {
	had := c.session.Authenticated()
	c.session.Clear()
	zlog.Warn().Int("status", status).Str("path", path).Msg("sessão encerrada pelo servidor")
	// only a dropped session triggers the hook; an anonymous 401 on
	// the login page itself must not loop back into it
	if had && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

func errMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || payload.Message == "" {
		return "Erro interno do servidor"
	}
	return payload.Message
}
