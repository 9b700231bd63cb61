package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cookieTTL matches the legacy client's 365-day cookies.
const cookieTTL = 365 * 24 * time.Hour

type cookieEntry struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// CookieFile is the secondary, cookie-like fallback store: a JSON file
// of values with expirations. Expired entries count as absent.
type CookieFile struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// NewCookieFile returns a fallback store at path with the default TTL.
func NewCookieFile(path string) *CookieFile {
	return &CookieFile{path: path, ttl: cookieTTL, now: time.Now}
}

func (c *CookieFile) Get(_ context.Context, key string) (string, error) {
	entries, err := c.load()
	if err != nil {
		return "", err
	}
	entry, ok := entries[key]
	if !ok || c.now().After(entry.Expires) {
		return "", ErrNotFound
	}
	return entry.Value, nil
}

func (c *CookieFile) Set(_ context.Context, key, value string) error {
	entries, err := c.load()
	if err != nil {
		return err
	}
	entries[key] = cookieEntry{Value: value, Expires: c.now().Add(c.ttl)}
	return c.save(entries)
}

func (c *CookieFile) Delete(_ context.Context, key string) error {
	entries, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return c.save(entries)
}

func (c *CookieFile) load() (map[string]cookieEntry, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]cookieEntry{}, nil
		}
		return nil, fmt.Errorf("profile: failed to read cookie file: %w", err)
	}
	entries := map[string]cookieEntry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("profile: failed to parse cookie file: %w", err)
	}
	return entries, nil
}

func (c *CookieFile) save(entries map[string]cookieEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("profile: failed to encode cookie file: %w", err)
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("profile: failed to create cookie dir: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("profile: failed to write cookie file: %w", err)
	}
	return nil
}
