package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pokedex/internal/view"
	"pokedex/pkg/models"
)

// The JSON endpoints mirror the pages: a failed fetch is still a 200 with
// phase "idle" and nothing loaded.

type ListResponse struct {
	Phase view.Phase       `json:"phase"`
	Items []models.Pokemon `json:"items"`
}

type DetailResponse struct {
	Phase   view.Phase            `json:"phase"`
	Pokemon *models.PokemonDetail `json:"pokemon"`
}

func (h *Handler) listJSON(c *gin.Context) {
	v := view.NewList(h.API, h.ListLimit, h.Log)
	v.Activate(c.Request.Context())

	items := v.Records()
	if items == nil {
		items = []models.Pokemon{}
	}
	c.JSON(http.StatusOK, ListResponse{Phase: v.Phase(), Items: items})
}

func (h *Handler) indexJSON(c *gin.Context) {
	c.JSON(http.StatusOK, h.newIndex(c).Snapshot())
}

func (h *Handler) detailJSON(c *gin.Context) {
	v := view.NewDetail(h.API, c.Param("id"), h.Log)
	v.Activate(c.Request.Context())

	c.JSON(http.StatusOK, DetailResponse{Phase: v.Phase(), Pokemon: v.Record()})
}
