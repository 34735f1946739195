package http

import (
	"net/http"

	"weldtrack-backend/internal/domain/catalog"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

func (h *CatalogHandler) ListItems(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Items())
}

func (h *CatalogHandler) GetItem(c echo.Context) error {
	item, err := catalog.ItemByID(c.Param("item_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}
