// Package weather is a client-only mock weather dashboard backend: a
// static lookup table of readings plus favorites and search history
// persisted to local JSON files. It makes no network calls.
package weather

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// maxHistory caps the search history at the 10 most recent cities.
const maxHistory = 10

const (
	favoritesFile = "weather-favorites.json"
	historyFile   = "weather-history.json"
)

// Reading is a mock weather snapshot for a city.
type Reading struct {
	City        string   `json:"city"`
	Temperature int      `json:"temperature"`
	Humidity    int      `json:"humidity"`
	Condition   string   `json:"condition"`
	Forecast    string   `json:"forecast"`
	Alerts      []string `json:"alerts"`
	HourlyTemp  []int    `json:"hourlyTemp"`
	WindSpeed   int      `json:"windSpeed"`
	Pressure    int      `json:"pressure"`
	Visibility  int      `json:"visibility"`
	UVIndex     int      `json:"uvIndex"`
	FeelsLike   int      `json:"feelsLike"`
	Sunrise     string   `json:"sunrise"`
	Sunset      string   `json:"sunset"`
	LastUpdated string   `json:"lastUpdated"`
}

// Store holds the favorites and search-history lists, persisting both to
// JSON files under dir on every mutation.
type Store struct {
	dir       string
	favorites []string
	history   []string
	mu        sync.RWMutex
}

// NewStore creates a Store rooted at dir, loading any previously
// persisted lists.
func NewStore(dir string) (*Store, error) {
	s := &Store{dir: dir}
	if err := loadList(filepath.Join(dir, favoritesFile), &s.favorites); err != nil {
		return nil, err
	}
	if err := loadList(filepath.Join(dir, historyFile), &s.history); err != nil {
		return nil, err
	}
	return s, nil
}

// Favorites returns a copy of the favorite cities, in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.favorites...)
}

// AddFavorite appends a city unless it is already present.
func (s *Store) AddFavorite(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.favorites {
		if c == city {
			return nil
		}
	}
	s.favorites = append(s.favorites, city)
	return s.saveList(favoritesFile, s.favorites)
}

// RemoveFavorite removes a city from the favorites.
func (s *Store) RemoveFavorite(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.favorites[:0]
	for _, c := range s.favorites {
		if c != city {
			kept = append(kept, c)
		}
	}
	s.favorites = kept
	return s.saveList(favoritesFile, s.favorites)
}

// History returns a copy of the search history, most recent first.
func (s *Store) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.history...)
}

// AddToHistory records a searched city: de-duplicated, most recent first,
// capped at the 10 latest entries.
func (s *Store) AddToHistory(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]string, 0, len(s.history)+1)
	filtered = append(filtered, city)
	for _, c := range s.history {
		if c != city {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) > maxHistory {
		filtered = filtered[:maxHistory]
	}
	s.history = filtered
	return s.saveList(historyFile, s.history)
}

// ClearHistory empties the search history.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	return s.saveList(historyFile, []string{})
}

// Reading returns the mock reading for a city, stamped with the current
// time, or nil for an unknown city.
func (s *Store) Reading(city string) *Reading {
	data, ok := mockReadings[city]
	if !ok {
		return nil
	}
	data.LastUpdated = time.Now().Format("15:04:05")
	return &data
}

func loadList(path string, out *[]string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (s *Store) saveList(name string, list []string) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
