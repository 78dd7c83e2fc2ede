package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// AfsStore persists values as one JSON document at URL
type AfsStore struct {
	mu     sync.Mutex
	URL    string
	fs     afs.Service
	loaded bool
	values map[string]string
}

func (s *AfsStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return "", false, err
	}
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *AfsStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.values[key] = value
	return s.save(ctx)
}

func (s *AfsStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	s.values = map[string]string{}
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return fmt.Errorf("failed to check store %v: %w", s.URL, err)
	}
	if exists {
		data, err := s.fs.DownloadWithURL(ctx, s.URL)
		if err != nil {
			return fmt.Errorf("failed to load store %v: %w", s.URL, err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err = json.Unmarshal(data, &s.values); err != nil {
				return fmt.Errorf("failed to decode store %v: %w", s.URL, err)
			}
		}
	}
	s.loaded = true
	return nil
}

func (s *AfsStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, s.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save store %v: %w", s.URL, err)
	}
	return nil
}

// NewAfsStore creates a store persisted at URL
func NewAfsStore(URL string) *AfsStore {
	return &AfsStore{URL: URL, fs: afs.New()}
}
