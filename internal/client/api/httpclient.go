package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dkrasnov/notecompass/internal/client/models"
)

// HTTPClient talks to the NoteCompass API over HTTP JSON. One request per
// operation, no retries; a non-zero timeout bounds the whole round trip,
// zero leaves requests unbounded (the upstream default).
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// sessionResponse is the login/register success body.
type sessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// deleteAck is the only delete response shape the client accepts; anything
// else is treated as a failed delete.
type deleteAck struct {
	Success bool `json:"success"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, mobile, email, password string) (*models.Session, error) {
	body := map[string]string{"name": name, "email": email, "mobile": mobile, "password": password}
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &resp); err != nil {
		return nil, err
	}
	return &models.Session{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) ListNotes(ctx context.Context, token string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, "/notes", token, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, token, title, content string) (*models.Note, error) {
	body := map[string]string{"title": title, "content": content}
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes", token, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, token, id, title, content string) (*models.Note, error) {
	body := map[string]string{"title": title, "content": content}
	var note models.Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), token, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, token, id string) error {
	var ack deleteAck
	if err := c.do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), token, nil, &ack); err != nil {
		return err
	}
	if !ack.Success {
		return fmt.Errorf("delete not acknowledged by server")
	}
	return nil
}

// do executes a single JSON round trip. A transport failure maps to
// ErrUnavailable; a non-2xx status maps to *APIError with the server's
// "message" field when one was sent.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// serverMessage extracts the "message" field from an error body, falling
// back to a generic description when the body has no usable message.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "request failed"
}
