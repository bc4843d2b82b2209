package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pokedex/internal/view"
	"pokedex/pkg/models"
)

// navTypes are the header links of the list page. They are decorative.
var navTypes = []string{"Grass", "Fire", "Water", "Electric", "Bug", "Poison"}

type listPageData struct {
	NavTypes []string
	Records  []models.Pokemon
}

func (h *Handler) listPage(c *gin.Context) {
	v := view.NewList(h.API, h.ListLimit, h.Log)
	v.Activate(c.Request.Context())

	c.HTML(http.StatusOK, "list.html", listPageData{
		NavTypes: navTypes,
		Records:  v.Records(),
	})
}

type indexPageData struct {
	view.Snapshot
}

func (d indexPageData) SelectURL(id int) string { return dexURL(d.Search, d.Category, id) }

func (d indexPageData) CloseURL() string { return dexURL(d.Search, d.Category, 0) }

// BadgeColors feeds the live script, which redraws badges itself.
func (d indexPageData) BadgeColors() map[string]string { return models.BadgeColors() }

func (h *Handler) indexPage(c *gin.Context) {
	v := h.newIndex(c)
	c.HTML(http.StatusOK, "index.html", indexPageData{Snapshot: v.Snapshot()})
}

type detailPageData struct {
	Record *models.PokemonDetail
}

func (h *Handler) detailPage(c *gin.Context) {
	v := view.NewDetail(h.API, c.Param("id"), h.Log)
	v.Activate(c.Request.Context())

	c.HTML(http.StatusOK, "detail.html", detailPageData{Record: v.Record()})
}
