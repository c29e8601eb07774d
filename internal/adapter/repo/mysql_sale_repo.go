package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	domain "github.com/papaslocas/sales-api/internal/entity"
	"github.com/papaslocas/sales-api/internal/usecase"
)

var ErrNotFound = errors.New("not found")

type MySQLSaleRepo struct{ db *sql.DB }

func NewMySQLSaleRepo(db *sql.DB) *MySQLSaleRepo { return &MySQLSaleRepo{db: db} }

// saleLine is a cart entry after catalog resolution, ready to insert.
type saleLine struct {
	productID int64
	quantity  int
	unitPrice float64
	subtotal  float64
}

// Register writes a whole sale in one transaction: customer upsert
// keyed by phone, the ventas row, one detalle_ventas row per cart
// entry. Prices come from the catalog inside the transaction, never
// from the client, and the declared total must match their sum. Any
// error rolls everything back.
func (r *MySQLSaleRepo) Register(ctx context.Context, reg *usecase.SaleRegistration) (*usecase.RegisteredSale, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	customerID, err := upsertCustomer(ctx, tx, reg)
	if err != nil {
		return nil, err
	}

	// Resolve every cart entry before writing the sale, so the stored
	// total is derived from catalog prices rather than client input.
	lines := make([]saleLine, 0, len(reg.Items))
	var total float64
	for _, it := range reg.Items {
		var (
			productID int64
			price     float64
		)
		err := tx.QueryRowContext(ctx, `
SELECT id_producto, precio FROM productos WHERE nombre = ? AND activo = TRUE`,
			it.ProductName,
		).Scan(&productID, &price)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", usecase.ErrUnknownProduct, it.ProductName)
		}
		if err != nil {
			return nil, fmt.Errorf("buscar producto %q: %w", it.ProductName, err)
		}

		subtotal := float64(it.Quantity) * price
		lines = append(lines, saleLine{productID: productID, quantity: it.Quantity, unitPrice: price, subtotal: subtotal})
		total += subtotal
	}

	// DECIMAL(10,2) tolerance
	if math.Abs(total-reg.DeclaredTotal) >= 0.005 {
		return nil, fmt.Errorf("%w: declarado %.2f, calculado %.2f", usecase.ErrTotalMismatch, reg.DeclaredTotal, total)
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO ventas (id_cliente, metodo_entrega, metodo_pago, direccion_entrega, subtotal, total, estado)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		customerID, reg.DeliveryMethod, reg.PaymentMethod, nullIfEmpty(reg.CustomerAddress),
		total, total, domain.StatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("insertar venta: %w", err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("id de venta: %w", err)
	}

	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO detalle_ventas (id_venta, id_producto, cantidad, precio_unitario, subtotal)
VALUES (?, ?, ?, ?, ?)`,
			saleID, l.productID, l.quantity, l.unitPrice, l.subtotal,
		); err != nil {
			return nil, fmt.Errorf("insertar detalle de venta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &usecase.RegisteredSale{
		SaleID:     saleID,
		CustomerID: customerID,
		Total:      total,
		Date:       time.Now(),
	}, nil
}

// upsertCustomer keeps at most one clientes row per phone number: an
// existing row gets its name/email/address refreshed, otherwise a new
// row is inserted. The UNIQUE key on telefono backs this up against
// concurrent registrations.
func upsertCustomer(ctx context.Context, tx *sql.Tx, reg *usecase.SaleRegistration) (int64, error) {
	var customerID int64
	err := tx.QueryRowContext(ctx, `
SELECT id_cliente FROM clientes WHERE telefono = ?`, reg.CustomerPhone).Scan(&customerID)
	switch {
	case err == nil:
		if _, err := tx.ExecContext(ctx, `
UPDATE clientes SET nombre_completo = ?, email = ?, direccion = ? WHERE id_cliente = ?`,
			reg.CustomerName, reg.CustomerEmail, nullIfEmpty(reg.CustomerAddress), customerID,
		); err != nil {
			return 0, fmt.Errorf("actualizar cliente: %w", err)
		}
		return customerID, nil

	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx, `
INSERT INTO clientes (nombre_completo, email, telefono, direccion) VALUES (?, ?, ?, ?)`,
			reg.CustomerName, reg.CustomerEmail, reg.CustomerPhone, nullIfEmpty(reg.CustomerAddress),
		)
		if err != nil {
			return 0, fmt.Errorf("insertar cliente: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("id de cliente: %w", err)
		}
		return id, nil

	default:
		return 0, fmt.Errorf("buscar cliente: %w", err)
	}
}

func (r *MySQLSaleRepo) ListRecent(ctx context.Context, limit int) ([]domain.SaleSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id_venta, fecha_venta, cliente, telefono, metodo_entrega, metodo_pago, total, estado, total_items
FROM vista_ventas_completas ORDER BY fecha_venta DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	defer rows.Close()

	var out []domain.SaleSummary
	for rows.Next() {
		var s domain.SaleSummary
		if err := rows.Scan(&s.SaleID, &s.Date, &s.Customer, &s.Phone,
			&s.DeliveryMethod, &s.PaymentMethod, &s.Total, &s.Status, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *MySQLSaleRepo) GetByID(ctx context.Context, id int64) (*usecase.SaleDetail, error) {
	var (
		d       usecase.SaleDetail
		address sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
SELECT v.id_venta, v.id_cliente, v.metodo_entrega, v.metodo_pago, v.direccion_entrega,
       v.subtotal, v.total, v.estado, v.fecha_venta,
       c.nombre_completo, c.email, c.telefono
FROM ventas v
INNER JOIN clientes c ON c.id_cliente = v.id_cliente
WHERE v.id_venta = ?`, id).Scan(
		&d.Sale.ID, &d.Sale.CustomerID, &d.Sale.DeliveryMethod, &d.Sale.PaymentMethod, &address,
		&d.Sale.Subtotal, &d.Sale.Total, &d.Sale.Status, &d.Sale.Date,
		&d.Customer.FullName, &d.Customer.Email, &d.Customer.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar venta %d: %w", id, err)
	}
	d.Sale.DeliveryAddress = address.String
	d.Customer.ID = d.Sale.CustomerID

	rows, err := r.db.QueryContext(ctx, `
SELECT dv.id_detalle, dv.id_venta, dv.id_producto, p.nombre, dv.cantidad, dv.precio_unitario, dv.subtotal
FROM detalle_ventas dv
INNER JOIN productos p ON p.id_producto = dv.id_producto
WHERE dv.id_venta = ?
ORDER BY dv.id_detalle`, id)
	if err != nil {
		return nil, fmt.Errorf("detalle de venta %d: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Product, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		d.Lines = append(d.Lines, l)
	}
	return &d, rows.Err()
}

// StatsToday aggregates today's sales, cancelled ones excluded. A day
// without sales yields count 0 and null sum/average, not an error.
func (r *MySQLSaleRepo) StatsToday(ctx context.Context) (domain.DailyStats, error) {
	var (
		stats   domain.DailyStats
		sum     sql.NullFloat64
		average sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*), SUM(total), AVG(total)
FROM ventas
WHERE DATE(fecha_venta) = CURDATE() AND estado != ?`, domain.StatusCancelled,
	).Scan(&stats.SaleCount, &sum, &average)
	if err != nil {
		return domain.DailyStats{}, fmt.Errorf("estadísticas del día: %w", err)
	}
	if sum.Valid {
		stats.TotalRevenue = &sum.Float64
	}
	if average.Valid {
		stats.AverageTicket = &average.Float64
	}
	return stats, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var _ usecase.SaleStore = (*MySQLSaleRepo)(nil)
