package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/papaslocas/sales-api/internal/logging"
	"github.com/papaslocas/sales-api/internal/usecase"
)

type ReservationHandler struct {
	create *usecase.CreateReservation
	store  usecase.ReservationStore
}

func NewReservationHandler(create *usecase.CreateReservation, store usecase.ReservationStore) *ReservationHandler {
	return &ReservationHandler{create: create, store: store}
}

type createReservationReq struct {
	Nombre   string `json:"nombre" binding:"required"`
	Celular  string `json:"celular" binding:"required"`
	Fecha    string `json:"fecha" binding:"required"`
	Hora     string `json:"hora" binding:"required"`
	Personas int    `json:"personas" binding:"required"`
}

// CreateReservation handles POST /api/reservas.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req createReservationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Por favor completa todos los campos", err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	ctx = logging.WithCtx(ctx, logging.From(c))

	r, err := h.create.Execute(ctx, usecase.CreateReservationInput{
		Name:      req.Nombre,
		Phone:     req.Celular,
		Date:      req.Fecha,
		Time:      req.Hora,
		PartySize: req.Personas,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrReservationInvalid) {
			fail(c, http.StatusBadRequest, "Reserva inválida", err)
			return
		}
		logging.From(c).Error("create reservation", "err", err)
		fail(c, http.StatusInternalServerError, "Error al registrar la reserva", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"mensaje": fmt.Sprintf("¡Reserva confirmada! Código: %s", r.Code),
		"data":    r,
	})
}

// GetReservation handles GET /api/reservas/:codigo.
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	r, err := h.store.Get(ctx, c.Param("codigo"))
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			fail(c, http.StatusNotFound, "Reserva no encontrada", nil)
			return
		}
		logging.From(c).Error("get reservation", "codigo", c.Param("codigo"), "err", err)
		fail(c, http.StatusInternalServerError, "Error al consultar la reserva", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": r})
}

// DownloadReceipt handles GET /api/reservas/:codigo/comprobante and
// serves the plain-text confirmation as a file download.
func (h *ReservationHandler) DownloadReceipt(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	r, err := h.store.Get(ctx, c.Param("codigo"))
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			fail(c, http.StatusNotFound, "Reserva no encontrada", nil)
			return
		}
		logging.From(c).Error("reservation receipt", "codigo", c.Param("codigo"), "err", err)
		fail(c, http.StatusInternalServerError, "Error al generar el comprobante", err)
		return
	}

	body, err := usecase.RenderReceipt(r)
	if err != nil {
		logging.From(c).Error("render receipt", "codigo", r.Code, "err", err)
		fail(c, http.StatusInternalServerError, "Error al generar el comprobante", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", usecase.ReceiptFilename(r)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
