package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain "github.com/papaslocas/sales-api/internal/entity"
	"github.com/papaslocas/sales-api/internal/usecase"
)

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

func (r *MySQLProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id_producto, nombre, categoria, precio, activo
FROM productos WHERE activo = TRUE ORDER BY categoria, nombre`)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Active); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MySQLProductRepo) GetActiveByName(ctx context.Context, name string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.QueryRowContext(ctx, `
SELECT id_producto, nombre, categoria, precio, activo
FROM productos WHERE nombre = ? AND activo = TRUE`, name).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("buscar producto %q: %w", name, err)
	}
	return &p, nil
}

var _ usecase.ProductStore = (*MySQLProductRepo)(nil)
