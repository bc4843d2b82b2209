package models

import "strconv"

// Summary is one entry of the list endpoint. It only names a record and
// points at the URL that resolves it; callers drop it once resolved.
type Summary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the record shape shared by every view.
type Pokemon struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Types  []string `json:"types"`            // ordered category labels
	Sprite string   `json:"sprite,omitempty"` // sprites.front_default
}

// Clone returns a copy that shares no backing array with p.
func (p Pokemon) Clone() Pokemon {
	p.Types = append([]string(nil), p.Types...)
	return p
}

// HasType reports whether t is one of the record's labels (exact match).
func (p Pokemon) HasType(t string) bool {
	for _, x := range p.Types {
		if x == t {
			return true
		}
	}
	return false
}

type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// PokemonDetail is a Pokemon plus the fields only the detail page renders.
// Height and Weight keep the raw API units (decimetres, hectograms).
type PokemonDetail struct {
	Pokemon
	Height    int      `json:"height"`
	Weight    int      `json:"weight"`
	Abilities []string `json:"abilities"`
	Stats     []Stat   `json:"stats"`
}

func (d PokemonDetail) HeightMeters() float64 { return float64(d.Height) / 10 }

func (d PokemonDetail) WeightKilograms() float64 { return float64(d.Weight) / 10 }

// FormatTenths renders a raw API measurement in metres or kilograms using
// the shortest decimal: 4 -> "0.4", 60 -> "6".
func FormatTenths(raw int) string {
	return strconv.FormatFloat(float64(raw)/10, 'f', -1, 64)
}
