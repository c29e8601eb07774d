package usecase

import (
	"context"
	"time"

	domain "github.com/papaslocas/sales-api/internal/entity"
)

// SaleRegistration is everything the store needs to run the
// registration transaction. Prices are deliberately absent: the store
// resolves them from the catalog inside the transaction.
type SaleRegistration struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	DeliveryMethod  string
	PaymentMethod   string
	Items           []SaleItem
	DeclaredTotal   float64
}

type SaleItem struct {
	ProductName string
	Quantity    int
}

type RegisteredSale struct {
	SaleID     int64
	CustomerID int64
	Total      float64
	Date       time.Time
}

// SaleDetail is a sale joined with its customer and line items.
type SaleDetail struct {
	Sale     domain.Sale
	Customer domain.Customer
	Lines    []domain.SaleLine
}

type SaleStore interface {
	// Register runs the whole registration as one transaction: customer
	// upsert, sale insert, one line per item. Nothing is written when it
	// returns an error.
	Register(ctx context.Context, reg *SaleRegistration) (*RegisteredSale, error)
	ListRecent(ctx context.Context, limit int) ([]domain.SaleSummary, error)
	GetByID(ctx context.Context, id int64) (*SaleDetail, error)
	StatsToday(ctx context.Context) (domain.DailyStats, error)
}

type ProductStore interface {
	ListActive(ctx context.Context) ([]domain.Product, error)
	GetActiveByName(ctx context.Context, name string) (*domain.Product, error)
}

type ReservationStore interface {
	Save(ctx context.Context, r *domain.Reservation) error
	Get(ctx context.Context, code string) (*domain.Reservation, error)
}
