package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pokedex/internal/dex"
	"pokedex/internal/pokeapi"
	"pokedex/internal/view"
)

// Handler builds a fresh view for every request; nothing is kept between
// requests.
type Handler struct {
	API        pokeapi.API
	ListLimit  int
	IndexLimit int
	Hub        *Hub
	Log        *zap.Logger
}

func NewHandler(api pokeapi.API, listLimit, indexLimit int, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		API:        api,
		ListLimit:  listLimit,
		IndexLimit: indexLimit,
		Hub:        NewHub(),
		Log:        log,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.listPage)
	r.GET("/dex", h.indexPage)
	r.GET("/dex/live", h.live)
	r.GET("/pokemon", h.detailPage) // no id: stays on "Loading..."
	r.GET("/pokemon/:id", h.detailPage)

	api := r.Group("/api")
	api.GET("/pokemon", h.listJSON)
	api.GET("/pokemon/:id", h.detailJSON)
	api.GET("/dex", h.indexJSON)
}

func (h *Handler) newIndex(c *gin.Context) *view.Index {
	v := view.NewIndex(h.API, h.IndexLimit, h.Log)
	v.Activate(c.Request.Context())
	v.SetSearch(c.Query("q"))
	v.SetCategory(strings.TrimSpace(c.Query("type")))
	if id, ok := parseID(c.Query("selected")); ok {
		v.Select(id)
	}
	return v
}

func parseID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dexURL keeps the current search and category when linking between index
// states.
func dexURL(search, category string, selected int) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if category != "" && category != dex.AllCategory {
		q.Set("type", category)
	}
	if selected > 0 {
		q.Set("selected", strconv.Itoa(selected))
	}
	if len(q) == 0 {
		return "/dex"
	}
	return "/dex?" + q.Encode()
}
