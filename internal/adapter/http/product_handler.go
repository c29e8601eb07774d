package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaslocas/sales-api/internal/adapter/repo"
	"github.com/papaslocas/sales-api/internal/logging"
	"github.com/papaslocas/sales-api/internal/usecase"
)

type ProductHandler struct {
	products usecase.ProductStore
}

func NewProductHandler(products usecase.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles GET /api/productos: active catalog entries
// ordered by category, then name.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	products, err := h.products.ListActive(ctx)
	if err != nil {
		logging.From(c).Error("list products", "err", err)
		fail(c, http.StatusInternalServerError, "Error al obtener productos", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// GetProductByName handles GET /api/productos/buscar/:nombre.
func (h *ProductHandler) GetProductByName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	p, err := h.products.GetActiveByName(ctx, c.Param("nombre"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, "Producto no encontrado", nil)
			return
		}
		logging.From(c).Error("get product", "nombre", c.Param("nombre"), "err", err)
		fail(c, http.StatusInternalServerError, "Error al buscar producto", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}
