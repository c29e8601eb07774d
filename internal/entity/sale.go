package domain

import "time"

type Status string

const (
	// Stored values match what the database and the storefront expect.
	StatusPending   Status = "Pendiente"
	StatusPreparing Status = "En preparación"
	StatusDelivered Status = "Entregado"
	StatusCancelled Status = "Cancelado"
)

// Product is a catalog row. The catalog is administered externally;
// this service only reads it.
type Product struct {
	ID       int64   `json:"id_producto"`
	Name     string  `json:"nombre"`
	Category string  `json:"categoria"`
	Price    float64 `json:"precio"`
	Active   bool    `json:"activo"`
}

// Customer is keyed by phone number: one row per phone, updated in
// place on every sale from that phone.
type Customer struct {
	ID       int64  `json:"id_cliente"`
	FullName string `json:"nombre_completo"`
	Email    string `json:"email"`
	Phone    string `json:"telefono"`
	Address  string `json:"direccion,omitempty"`
}

type Sale struct {
	ID              int64     `json:"id_venta"`
	CustomerID      int64     `json:"id_cliente"`
	DeliveryMethod  string    `json:"metodo_entrega"`
	PaymentMethod   string    `json:"metodo_pago"`
	DeliveryAddress string    `json:"direccion_entrega,omitempty"`
	Subtotal        float64   `json:"subtotal"`
	Total           float64   `json:"total"`
	Status          Status    `json:"estado"`
	Date            time.Time `json:"fecha_venta"`
}

// SaleLine snapshots the catalog price at registration time.
type SaleLine struct {
	ID        int64   `json:"id_detalle"`
	SaleID    int64   `json:"id_venta"`
	ProductID int64   `json:"id_producto"`
	Product   string  `json:"producto_nombre,omitempty"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleSummary is one row of the vista_ventas_completas read view.
type SaleSummary struct {
	SaleID         int64     `json:"id_venta"`
	Date           time.Time `json:"fecha_venta"`
	Customer       string    `json:"cliente"`
	Phone          string    `json:"telefono"`
	DeliveryMethod string    `json:"metodo_entrega"`
	PaymentMethod  string    `json:"metodo_pago"`
	Total          float64   `json:"total"`
	Status         Status    `json:"estado"`
	ItemCount      int       `json:"total_items"`
}

// DailyStats aggregates today's non-cancelled sales. Sum and average
// are pointers so a day with zero sales serializes as null, the same
// way the SQL aggregates come back.
type DailyStats struct {
	SaleCount     int64    `json:"total_ventas"`
	TotalRevenue  *float64 `json:"ingresos_totales"`
	AverageTicket *float64 `json:"ticket_promedio"`
}
