// Package fakeapi serves a small in-memory PokeAPI over httptest.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

type Pokemon struct {
	ID        int
	Name      string
	Types     []string
	Abilities []string
	Height    int
	Weight    int
	Stats     map[string]int
	// NoSprite makes sprites.front_default null.
	NoSprite bool
}

type Link struct {
	SpeciesID int
	Species   string
	EvolvesTo []Link
}

type Server struct {
	*httptest.Server

	mu      sync.Mutex
	listing []Pokemon
	byName  map[string]Pokemon
	byID    map[int]Pokemon
	chains  map[int]Link
	chainOf map[int]int
	status  map[string]int
	delay   map[string]time.Duration
	hits    map[string]int
}

func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		byName:  map[string]Pokemon{},
		byID:    map[int]Pokemon{},
		chains:  map[int]Link{},
		chainOf: map[int]int{},
		status:  map[string]int{},
		delay:   map[string]time.Duration{},
		hits:    map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/pokemon", s.handleList)
	mux.HandleFunc("/pokemon/", s.handlePokemon)
	mux.HandleFunc("/pokemon-species/", s.handleSpecies)
	mux.HandleFunc("/evolution-chain/", s.handleChain)
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Generated builds n pokemon named mon-0001.. with rotating types.
func Generated(n int) []Pokemon {
	types := []string{"fire", "water", "grass", "normal"}
	out := make([]Pokemon, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Pokemon{
			ID:        i,
			Name:      fmt.Sprintf("mon-%04d", i),
			Types:     []string{types[(i-1)%len(types)]},
			Abilities: []string{"overgrow"},
			Height:    i,
			Weight:    i * 10,
			Stats:     map[string]int{"hp": 40 + i%50, "attack": 50},
		})
	}
	return out
}

func (s *Server) AddPokemon(pokemon ...Pokemon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range pokemon {
		s.listing = append(s.listing, p)
		s.byName[p.Name] = p
		s.byID[p.ID] = p
	}
}

// AddChain registers a chain and maps every species in it to the chain id.
func (s *Server) AddChain(id int, root Link) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chains[id] = root
	var walk func(Link)
	walk = func(l Link) {
		s.chainOf[l.SpeciesID] = id
		for _, next := range l.EvolvesTo {
			walk(next)
		}
	}
	walk(root)
}

// FailPokemon makes the detail endpoint for name answer with status.
func (s *Server) FailPokemon(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

func (s *Server) DelayPokemon(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay[name] = d
}

// Hits counts requests per path, query string excluded.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	s.mu.Lock()
	total := len(s.listing)
	results := make([]map[string]string, 0, limit)
	for i := offset; i < total && i < offset+limit; i++ {
		p := s.listing[i]
		results = append(results, map[string]string{
			"name": p.Name,
			"url":  fmt.Sprintf("%s/pokemon/%d/", s.URL, p.ID),
		})
	}
	s.mu.Unlock()

	writeJSON(w, map[string]any{"count": total, "next": nil, "previous": nil, "results": results})
}

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon/"), "/")

	s.mu.Lock()
	p, ok := s.byName[key]
	if !ok {
		if id, err := strconv.Atoi(key); err == nil {
			p, ok = s.byID[id]
		}
	}
	status := s.status[p.Name]
	delay := s.delay[p.Name]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	types := make([]map[string]any, 0, len(p.Types))
	for i, t := range p.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": map[string]string{"name": t, "url": ""}})
	}
	abilities := make([]map[string]any, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, map[string]any{"is_hidden": false, "ability": map[string]string{"name": a, "url": ""}})
	}
	stats := make([]map[string]any, 0, len(p.Stats))
	for _, name := range []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"} {
		value, ok := p.Stats[name]
		if !ok {
			continue
		}
		stats = append(stats, map[string]any{"base_stat": value, "effort": 0, "stat": map[string]string{"name": name, "url": ""}})
	}
	var sprite any = fmt.Sprintf("%s/sprites/%d.png", s.URL, p.ID)
	if p.NoSprite {
		sprite = nil
	}

	writeJSON(w, map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"height":    p.Height,
		"weight":    p.Weight,
		"sprites":   map[string]any{"front_default": sprite},
		"types":     types,
		"abilities": abilities,
		"stats":     stats,
		"species": map[string]string{
			"name": p.Name,
			"url":  fmt.Sprintf("%s/pokemon-species/%d/", s.URL, p.ID),
		},
	})
}

func (s *Server) handleSpecies(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon-species/"), "/"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	p, ok := s.byID[id]
	chainID, hasChain := s.chainOf[id]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	payload := map[string]any{"id": id, "name": p.Name, "evolution_chain": nil}
	if hasChain {
		payload["evolution_chain"] = map[string]string{"url": fmt.Sprintf("%s/evolution-chain/%d/", s.URL, chainID)}
	}
	writeJSON(w, payload)
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/evolution-chain/"), "/"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	root, ok := s.chains[id]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{"id": id, "chain": s.linkJSON(root)})
}

func (s *Server) linkJSON(l Link) map[string]any {
	next := make([]map[string]any, 0, len(l.EvolvesTo))
	for _, child := range l.EvolvesTo {
		next = append(next, s.linkJSON(child))
	}
	return map[string]any{
		"is_baby": false,
		"species": map[string]string{
			"name": l.Species,
			"url":  fmt.Sprintf("%s/pokemon-species/%d/", s.URL, l.SpeciesID),
		},
		"evolves_to": next,
	}
}

func (s *Server) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[r.URL.Path]++
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
