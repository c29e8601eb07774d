package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/papaslocas/sales-api/internal/entity"
	"github.com/papaslocas/sales-api/internal/logging"
)

// saleStoreStub records the registration it receives and returns a
// canned result. The read methods are never exercised here.
type saleStoreStub struct {
	got   *SaleRegistration
	out   *RegisteredSale
	err   error
	calls int
}

func (f *saleStoreStub) Register(_ context.Context, reg *SaleRegistration) (*RegisteredSale, error) {
	f.calls++
	f.got = reg
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *saleStoreStub) ListRecent(context.Context, int) ([]domain.SaleSummary, error) {
	return nil, nil
}

func (f *saleStoreStub) GetByID(context.Context, int64) (*SaleDetail, error) {
	return nil, nil
}

func (f *saleStoreStub) StatsToday(context.Context) (domain.DailyStats, error) {
	return domain.DailyStats{}, nil
}

func validInput() RegisterSaleInput {
	return RegisterSaleInput{
		Name:           "Ana María",
		Email:          "ana@example.com",
		Phone:          "3001234567",
		DeliveryMethod: "domicilio",
		PaymentMethod:  "efectivo",
		Items:          []SaleItem{{ProductName: "Papas Locas Clásicas", Quantity: 2}},
		DeclaredTotal:  40,
	}
}

func TestRegisterSaleHappyPath(t *testing.T) {
	store := &saleStoreStub{out: &RegisteredSale{SaleID: 11, CustomerID: 7, Total: 40, Date: time.Now()}}
	uc := NewRegisterSale(store)

	out, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.SaleID)
	assert.Equal(t, int64(7), out.CustomerID)
	assert.Equal(t, 1, store.calls)
	require.NotNil(t, store.got)
	assert.Equal(t, "3001234567", store.got.CustomerPhone)
	assert.Equal(t, float64(40), store.got.DeclaredTotal)
}

func TestRegisterSaleTrimsCustomerFields(t *testing.T) {
	store := &saleStoreStub{out: &RegisteredSale{}}
	uc := NewRegisterSale(store)

	in := validInput()
	in.Name = "  Ana María  "
	in.Phone = " 3001234567 "

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", store.got.CustomerName)
	assert.Equal(t, "3001234567", store.got.CustomerPhone)
}

func TestRegisterSaleValidation(t *testing.T) {
	cases := map[string]func(*RegisterSaleInput){
		"missing name":      func(in *RegisterSaleInput) { in.Name = "" },
		"blank name":        func(in *RegisterSaleInput) { in.Name = "   " },
		"missing email":     func(in *RegisterSaleInput) { in.Email = "" },
		"missing phone":     func(in *RegisterSaleInput) { in.Phone = "" },
		"missing delivery":  func(in *RegisterSaleInput) { in.DeliveryMethod = "" },
		"missing payment":   func(in *RegisterSaleInput) { in.PaymentMethod = "" },
		"empty cart":        func(in *RegisterSaleInput) { in.Items = nil },
		"zero quantity":     func(in *RegisterSaleInput) { in.Items[0].Quantity = 0 },
		"negative quantity": func(in *RegisterSaleInput) { in.Items[0].Quantity = -2 },
		"unnamed product":   func(in *RegisterSaleInput) { in.Items[0].ProductName = " " },
		"zero total":        func(in *RegisterSaleInput) { in.DeclaredTotal = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			store := &saleStoreStub{out: &RegisteredSale{}}
			uc := NewRegisterSale(store)

			in := validInput()
			mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.ErrorIs(t, err, ErrValidation)
			// fail fast: the store must never be reached
			assert.Zero(t, store.calls)
		})
	}
}

func TestRegisterSaleLogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithCtx(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	store := &saleStoreStub{out: &RegisteredSale{SaleID: 11, CustomerID: 7, Total: 40}}
	_, err := NewRegisterSale(store).Execute(ctx, validInput())
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "venta registrada")
	assert.Contains(t, logged, `"id_venta":11`)
	assert.Contains(t, logged, `"id_cliente":7`)
}

func TestRegisterSalePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("deadlock")
	uc := NewRegisterSale(&saleStoreStub{err: storeErr})

	_, err := uc.Execute(context.Background(), validInput())
	require.ErrorIs(t, err, storeErr)
}
