package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/papaslocas/sales-api/internal/adapter/http/middleware"
	"github.com/papaslocas/sales-api/internal/logging"
)

func NewRouter(sh *SaleHandler, ph *ProductHandler, rh *ReservationHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())
	r.Use(middleware.Logging(logging.New("http")))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"mensaje": "API de Papas Locas funcionando correctamente",
			"version": "1.0.0",
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/productos", ph.ListProducts)
		api.GET("/productos/buscar/:nombre", ph.GetProductByName)

		api.POST("/ventas/registrar", sh.RegisterSale)
		api.GET("/ventas", sh.ListSales)
		api.GET("/ventas/:id", sh.GetSaleByID)

		api.GET("/estadisticas/hoy", sh.StatsToday)

		api.POST("/reservas", rh.CreateReservation)
		api.GET("/reservas/:codigo", rh.GetReservation)
		api.GET("/reservas/:codigo/comprobante", rh.DownloadReceipt)
	}

	return r
}
