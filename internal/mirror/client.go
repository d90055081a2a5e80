// Package mirror copies the local snapshot to a single row of a remote
// PostgREST table (Supabase), the same row the web app writes.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/model"
)

var (
	// ErrNotConfigured is returned when no mirror URL is set.
	ErrNotConfigured = errors.New("mirror not configured")
	// ErrNoRemote is returned by Pull when the row does not exist yet.
	ErrNoRemote = errors.New("no remote data")
)

// Pusher uploads a snapshot.
type Pusher interface {
	Push(ctx context.Context, d model.AppData) error
}

// Client talks to the PostgREST endpoint.
type Client struct {
	BaseURL string
	APIKey  string
	Table   string
	RowID   string
	HTTP    *http.Client
	Now     func() time.Time
}

// NewClient builds a client from config.
func NewClient(cfg config.MirrorConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		BaseURL: strings.TrimRight(cfg.URL, "/"),
		APIKey:  cfg.APIKey,
		Table:   cfg.Table,
		RowID:   cfg.RowID,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Now:     time.Now,
	}, nil
}

type row struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/rest/v1/%s", c.BaseURL, url.PathEscape(c.Table))
}

func (c *Client) authorize(req *http.Request) {
	if c.APIKey == "" {
		return
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
}

// Push upserts the snapshot into the mirror row. Last write wins.
func (c *Client) Push(ctx context.Context, d model.AppData) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	body, err := json.Marshal([]row{{
		ID:        c.RowID,
		Data:      data,
		UpdatedAt: c.Now().UTC().Format(time.RFC3339),
	}})
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mirror API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Pull fetches the mirror row.
func (c *Client) Pull(ctx context.Context) (model.AppData, error) {
	q := url.Values{}
	q.Set("id", "eq."+c.RowID)
	q.Set("select", "id,data,updated_at")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"?"+q.Encode(), nil)
	if err != nil {
		return model.AppData{}, fmt.Errorf("build pull request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return model.AppData{}, fmt.Errorf("pull: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return model.AppData{}, fmt.Errorf("mirror API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return model.AppData{}, fmt.Errorf("decode pull response: %w", err)
	}
	if len(rows) == 0 || len(rows[0].Data) == 0 || string(rows[0].Data) == "null" {
		return model.AppData{}, ErrNoRemote
	}
	return model.ParseAppData(rows[0].Data), nil
}
