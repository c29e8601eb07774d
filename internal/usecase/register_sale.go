package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/papaslocas/sales-api/internal/logging"
)

var (
	// ErrValidation covers missing or malformed request fields; nothing
	// is written and no transaction is opened.
	ErrValidation = errors.New("datos de venta inválidos")

	// ErrUnknownProduct means a cart entry named a product the catalog
	// does not have (or it is inactive). The store wraps it with the
	// offending name.
	ErrUnknownProduct = errors.New("producto no encontrado")

	// ErrTotalMismatch means the client-declared total does not equal
	// the sum of catalog-priced line subtotals.
	ErrTotalMismatch = errors.New("el total no coincide con los precios del catálogo")
)

type RegisterSaleInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	DeliveryMethod string
	PaymentMethod  string
	Items          []SaleItem
	DeclaredTotal  float64
}

type RegisterSale struct {
	sales SaleStore
}

func NewRegisterSale(sales SaleStore) *RegisterSale {
	return &RegisterSale{sales: sales}
}

func (uc *RegisterSale) Execute(ctx context.Context, in RegisterSaleInput) (*RegisteredSale, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	out, err := uc.sales.Register(ctx, &SaleRegistration{
		CustomerName:    strings.TrimSpace(in.Name),
		CustomerEmail:   strings.TrimSpace(in.Email),
		CustomerPhone:   strings.TrimSpace(in.Phone),
		CustomerAddress: strings.TrimSpace(in.Address),
		DeliveryMethod:  in.DeliveryMethod,
		PaymentMethod:   in.PaymentMethod,
		Items:           in.Items,
		DeclaredTotal:   in.DeclaredTotal,
	})
	if err != nil {
		return nil, err
	}

	logging.FromCtx(ctx).Info("venta registrada",
		"id_venta", out.SaleID, "id_cliente", out.CustomerID, "total", out.Total)
	return out, nil
}

func (in RegisterSaleInput) validate() error {
	required := []struct {
		field, value string
	}{
		{"nombre", in.Name},
		{"email", in.Email},
		{"telefono", in.Phone},
		{"metodo_entrega", in.DeliveryMethod},
		{"metodo_pago", in.PaymentMethod},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: falta %s", ErrValidation, r.field)
		}
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: debe incluir al menos un producto", ErrValidation)
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" {
			return fmt.Errorf("%w: producto sin nombre", ErrValidation)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: cantidad inválida para %s", ErrValidation, it.ProductName)
		}
	}
	if in.DeclaredTotal <= 0 {
		return fmt.Errorf("%w: falta total", ErrValidation)
	}
	return nil
}
