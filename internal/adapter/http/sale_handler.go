package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaslocas/sales-api/internal/adapter/http/middleware"
	"github.com/papaslocas/sales-api/internal/adapter/repo"
	"github.com/papaslocas/sales-api/internal/logging"
	"github.com/papaslocas/sales-api/internal/usecase"
)

// recentSalesLimit bounds GET /api/ventas, same cap the storefront
// has always shown.
const recentSalesLimit = 50

type SaleHandler struct {
	register *usecase.RegisterSale
	sales    usecase.SaleStore
}

func NewSaleHandler(register *usecase.RegisterSale, sales usecase.SaleStore) *SaleHandler {
	return &SaleHandler{register: register, sales: sales}
}

type cartItemReq struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Cantidad int     `json:"cantidad" binding:"required,gte=1"`
	// Precio is informational only: the server reprices every line from
	// the catalog inside the transaction.
	Precio float64 `json:"precio"`
}

type registerSaleReq struct {
	Nombre        string        `json:"nombre" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Telefono      string        `json:"telefono" binding:"required"`
	Direccion     string        `json:"direccion"`
	MetodoEntrega string        `json:"metodo_entrega" binding:"required"`
	MetodoPago    string        `json:"metodo_pago" binding:"required"`
	Productos     []cartItemReq `json:"productos" binding:"required,min=1,dive"`
	Total         float64       `json:"total" binding:"required,gt=0"`
}

// RegisterSale handles POST /api/ventas/registrar.
func (h *SaleHandler) RegisterSale(c *gin.Context) {
	var req registerSaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Faltan datos obligatorios", err)
		return
	}

	items := make([]usecase.SaleItem, 0, len(req.Productos))
	for _, p := range req.Productos {
		items = append(items, usecase.SaleItem{ProductName: p.Nombre, Quantity: p.Cantidad})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	ctx = logging.WithCtx(ctx, logging.From(c))

	out, err := h.register.Execute(ctx, usecase.RegisterSaleInput{
		Name:           req.Nombre,
		Email:          req.Email,
		Phone:          req.Telefono,
		Address:        req.Direccion,
		DeliveryMethod: req.MetodoEntrega,
		PaymentMethod:  req.MetodoPago,
		Items:          items,
		DeclaredTotal:  req.Total,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			fail(c, http.StatusBadRequest, "Datos de venta inválidos", err)
		case errors.Is(err, usecase.ErrUnknownProduct), errors.Is(err, usecase.ErrTotalMismatch):
			fail(c, http.StatusUnprocessableEntity, "No se pudo registrar la venta", err)
		default:
			logging.From(c).Error("register sale", "err", err)
			fail(c, http.StatusInternalServerError, "Error al registrar la venta", err)
		}
		return
	}

	middleware.CountSaleRegistered()
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"mensaje": "¡Venta registrada exitosamente!",
		"data": gin.H{
			"id_venta":    out.SaleID,
			"id_cliente":  out.CustomerID,
			"total":       out.Total,
			"fecha_venta": out.Date,
		},
	})
}

// ListSales handles GET /api/ventas: the most recent rows of the
// vista_ventas_completas read view.
func (h *SaleHandler) ListSales(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	sales, err := h.sales.ListRecent(ctx, recentSalesLimit)
	if err != nil {
		logging.From(c).Error("list sales", "err", err)
		fail(c, http.StatusInternalServerError, "Error al obtener ventas", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sales})
}

// GetSaleByID handles GET /api/ventas/:id.
func (h *SaleHandler) GetSaleByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Identificador de venta inválido", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	detail, err := h.sales.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, "Venta no encontrada", err)
			return
		}
		logging.From(c).Error("get sale", "id", id, "err", err)
		fail(c, http.StatusInternalServerError, "Error al obtener detalle de venta", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"venta":     detail.Sale,
			"cliente":   detail.Customer,
			"productos": detail.Lines,
		},
	})
}

// StatsToday handles GET /api/estadisticas/hoy.
func (h *SaleHandler) StatsToday(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.sales.StatsToday(ctx)
	if err != nil {
		logging.From(c).Error("daily stats", "err", err)
		fail(c, http.StatusInternalServerError, "Error al obtener estadísticas", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func fail(c *gin.Context, status int, mensaje string, err error) {
	body := gin.H{"success": false, "mensaje": mensaje}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
