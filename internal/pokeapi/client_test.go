package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/pokeapi/pokeapitest"
	"pokedex/pkg/models"
)

func TestClient_GetDetail(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Pikachu)
	defer srv.Close()

	c := NewClient(srv.BaseURL())
	d, err := c.GetDetail(context.Background(), "25")
	require.NoError(t, err)

	want := &models.PokemonDetail{
		Pokemon: models.Pokemon{
			ID:     25,
			Name:   "pikachu",
			Types:  []string{"electric"},
			Sprite: "https://img.example/25.png",
		},
		Height:    4,
		Weight:    60,
		Abilities: []string{"static", "lightning-rod"},
		Stats: []models.Stat{
			{Name: "hp", Base: 35},
			{Name: "attack", Base: 55},
			{Name: "defense", Base: 40},
			{Name: "special-attack", Base: 50},
			{Name: "special-defense", Base: 50},
			{Name: "speed", Base: 90},
		},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, srv.Hits("/pokemon/25"))
	assert.InDelta(t, 0.4, d.HeightMeters(), 1e-9)
	assert.InDelta(t, 6.0, d.WeightKilograms(), 1e-9)
}

func TestClient_GetDetailByName(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Pikachu)
	defer srv.Close()

	d, err := NewClient(srv.BaseURL()).GetDetail(context.Background(), "pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, d.ID)
}

func TestClient_FetchPage(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Generated(30)...)
	defer srv.Close()

	c := NewClient(srv.BaseURL())
	got, err := c.FetchPage(context.Background(), 20)
	require.NoError(t, err)

	require.Len(t, got, 20)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID, "position %d", i)
	}
	assert.Equal(t, 1, srv.Hits("/pokemon"))
	assert.Equal(t, 21, srv.TotalHits())
}

func TestClient_FetchPageAllOrNothing(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Generated(20)...)
	defer srv.Close()
	srv.FailDetail(7)

	got, err := NewClient(srv.BaseURL()).FetchPage(context.Background(), 20)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetch))
	assert.Nil(t, got)
}

func TestClient_ListFailure(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Generated(5)...)
	defer srv.Close()
	srv.FailList()

	_, err := NewClient(srv.BaseURL()).FetchPage(context.Background(), 5)
	require.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "status 500")
	assert.Zero(t, srv.Hits("/pokemon/1"))
}

func TestClient_NotFound(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Pikachu)
	defer srv.Close()

	_, err := NewClient(srv.BaseURL()).GetDetail(context.Background(), "missingno")
	require.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "not-a-number"`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetDetail(context.Background(), "1")
	require.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_Timeout(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Pikachu)
	defer srv.Close()
	srv.Delay(func(int) time.Duration { return 500 * time.Millisecond })

	c := NewClient(srv.BaseURL(), WithTimeout(20*time.Millisecond))
	_, err := c.GetDetail(context.Background(), "25")
	require.ErrorIs(t, err, ErrFetch)
}

func TestWithTimeout_LeavesCallerClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := NewClient("", WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, c.HTTP.Timeout)
	assert.NotSame(t, shared, c.HTTP)
}

func TestWithHTTPClient_NilIgnored(t *testing.T) {
	srv := pokeapitest.New(pokeapitest.Pikachu)
	defer srv.Close()

	c := NewClient(srv.BaseURL(), WithHTTPClient(nil))
	require.NotNil(t, c.HTTP)

	d, err := c.GetDetail(context.Background(), "25")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", d.Name)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Zero(t, c.HTTP.Timeout)
	assert.NotNil(t, c.Log)

	c = NewClient("http://example.test/api/v2/")
	assert.Equal(t, "http://example.test/api/v2", c.BaseURL)
}
