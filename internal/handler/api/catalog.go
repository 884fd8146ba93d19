package api

import (
	"errors"
	"net/http"

	resdto "pos-register/internal/handler/dto/response"
	"pos-register/internal/handler/httperr"
	"pos-register/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary Load catalog
// @Description Refresh and return the sellable item snapshot
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CatalogEntryResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /catalog [get]
func (h *CatalogHandler) Load(c *gin.Context) {
	entries, err := h.catalogUseCase.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Catalog is temporarily unavailable",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntries(entries))
}

// @Summary Search catalog
// @Description Search sellable items; short queries filter the cached snapshot locally
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Success 200 {array} resdto.CatalogEntryResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /catalog/search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	entries, err := h.catalogUseCase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, usecase.ErrCatalogUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Catalog search is temporarily unavailable",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntries(entries))
}
