// Package pokeapitest serves a small in-memory PokeAPI for tests.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Entry is one fixture record in PokeAPI's wire shape inputs.
type Entry struct {
	ID        int
	Name      string
	Types     []string
	Height    int
	Weight    int
	Abilities []string
	Stats     map[string]int // rendered in StatOrder
}

// StatOrder is the order PokeAPI returns base stats in.
var StatOrder = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

// Pikachu mirrors the real /pokemon/25 payload for the fields we use.
var Pikachu = Entry{
	ID:        25,
	Name:      "pikachu",
	Types:     []string{"electric"},
	Height:    4,
	Weight:    60,
	Abilities: []string{"static", "lightning-rod"},
	Stats: map[string]int{
		"hp": 35, "attack": 55, "defense": 40,
		"special-attack": 50, "special-defense": 50, "speed": 90,
	},
}

// Server is an httptest.Server with request accounting and failure hooks.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	entries  []Entry
	byKey    map[string]Entry
	fail     map[int]bool
	failList bool
	delay    func(id int) time.Duration
	hits     map[string]int
}

// New starts a server holding entries in list order.
func New(entries ...Entry) *Server {
	s := &Server{
		byKey: make(map[string]Entry),
		fail:  make(map[int]bool),
		hits:  make(map[string]int),
	}
	for _, e := range entries {
		s.add(e)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Generated returns n synthetic entries with ids 1..n. Types cycle so
// every few records share a label and some records have two.
func Generated(n int) []Entry {
	palette := []string{"grass", "fire", "water", "bug", "normal", "poison", "electric"}
	out := make([]Entry, 0, n)
	for i := 1; i <= n; i++ {
		types := []string{palette[(i-1)%len(palette)]}
		if i%3 == 0 {
			second := palette[i%len(palette)]
			if second != types[0] {
				types = append(types, second)
			}
		}
		out = append(out, Entry{
			ID:        i,
			Name:      fmt.Sprintf("mon-%03d", i),
			Types:     types,
			Height:    i,
			Weight:    i * 10,
			Abilities: []string{"ability-" + strconv.Itoa(i)},
			Stats:     map[string]int{"hp": 40 + i},
		})
	}
	return out
}

func (s *Server) add(e Entry) {
	s.entries = append(s.entries, e)
	s.byKey[strconv.Itoa(e.ID)] = e
	s.byKey[e.Name] = e
}

// FailDetail makes /pokemon/{id} answer 500.
func (s *Server) FailDetail(id int) {
	s.mu.Lock()
	s.fail[id] = true
	s.mu.Unlock()
}

// FailList makes the list endpoint answer 500.
func (s *Server) FailList() {
	s.mu.Lock()
	s.failList = true
	s.mu.Unlock()
}

// Delay holds each detail response for f(id) before answering.
func (s *Server) Delay(f func(id int) time.Duration) {
	s.mu.Lock()
	s.delay = f
	s.mu.Unlock()
}

// Hits reports how many requests reached path (query excluded).
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// TotalHits reports every request the server received.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.hits {
		n += v
	}
	return n
}

// BaseURL is what a pokeapi.Client should be pointed at.
func (s *Server) BaseURL() string { return s.URL }

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	s.mu.Lock()
	s.hits[path]++
	failList := s.failList
	s.mu.Unlock()

	if path == "/pokemon" {
		if failList {
			http.Error(w, "list unavailable", http.StatusInternalServerError)
			return
		}
		s.serveList(w, r)
		return
	}

	key, ok := strings.CutPrefix(path, "/pokemon/")
	if !ok || key == "" {
		http.NotFound(w, r)
		return
	}
	s.serveDetail(w, r, key)
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}

	s.mu.Lock()
	entries := s.entries
	s.mu.Unlock()
	if limit > len(entries) {
		limit = len(entries)
	}

	type result struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := make([]result, 0, limit)
	for _, e := range entries[:limit] {
		results = append(results, result{
			Name: e.Name,
			URL:  fmt.Sprintf("%s/pokemon/%d/", s.URL, e.ID),
		})
	}
	writeJSON(w, map[string]any{
		"count":   len(entries),
		"results": results,
	})
}

func (s *Server) serveDetail(w http.ResponseWriter, r *http.Request, key string) {
	s.mu.Lock()
	e, ok := s.byKey[key]
	failing := ok && s.fail[e.ID]
	delay := s.delay
	s.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if delay != nil {
		select {
		case <-time.After(delay(e.ID)):
		case <-r.Context().Done():
			return
		}
	}
	if failing {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	}
	writeJSON(w, payload(e))
}

func payload(e Entry) map[string]any {
	types := make([]any, 0, len(e.Types))
	for i, t := range e.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": map[string]any{"name": t}})
	}
	abilities := make([]any, 0, len(e.Abilities))
	for _, a := range e.Abilities {
		abilities = append(abilities, map[string]any{"ability": map[string]any{"name": a}})
	}
	stats := make([]any, 0, len(e.Stats))
	for _, name := range StatOrder {
		if v, ok := e.Stats[name]; ok {
			stats = append(stats, map[string]any{"base_stat": v, "stat": map[string]any{"name": name}})
		}
	}
	return map[string]any{
		"id":        e.ID,
		"name":      e.Name,
		"types":     types,
		"sprites":   map[string]any{"front_default": fmt.Sprintf("https://img.example/%d.png", e.ID)},
		"height":    e.Height,
		"weight":    e.Weight,
		"abilities": abilities,
		"stats":     stats,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
