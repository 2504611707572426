// Package storage persists generated daily content across restarts.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Entry is one generated daily document.
type Entry struct {
	Kind    string `json:"kind"` // "briefing" or "digest"
	Date    string `json:"date"` // UTC day, 2006-01-02
	Content string `json:"content"`
}

// BriefingStore keeps the current briefing and digest in a JSON file
// so a restart within the same day does not re-spend AI budget.
type BriefingStore struct {
	filePath string
	entries  map[string]Entry // keyed by kind
	mu       sync.RWMutex
}

func NewBriefingStore(filePath string) *BriefingStore {
	return &BriefingStore{
		filePath: filePath,
		entries:  make(map[string]Entry),
	}
}

// Load reads the store file. A missing file is not an error.
func (s *BriefingStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read briefing store: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse briefing store: %w", err)
	}
	for _, e := range entries {
		s.entries[e.Kind] = e
	}
	return nil
}

// Get returns the stored content for kind if it is from the given day.
func (s *BriefingStore) Get(kind, date string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[kind]
	if !exists || e.Date != date {
		return "", false
	}
	return e.Content, true
}

// Put stores content for kind and date and persists the file. Older
// entries for the same kind are replaced.
func (s *BriefingStore) Put(kind, date, content string) error {
	s.mu.Lock()
	s.entries[kind] = Entry{Kind: kind, Date: date, Content: content}
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal briefing store: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write briefing store: %w", err)
	}
	return nil
}
