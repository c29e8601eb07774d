package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	domain "github.com/papaslocas/sales-api/internal/entity"
	"github.com/papaslocas/sales-api/internal/logging"
)

var (
	// ErrReservationInvalid covers every form-level rejection; the
	// wrapped message says which rule failed.
	ErrReservationInvalid = errors.New("reserva inválida")

	// ErrReservationNotFound is returned on lookups for codes that were
	// never issued or have already expired.
	ErrReservationNotFound = errors.New("reserva no encontrada")

	// ErrCodeTaken is returned by a store whose Save found the code
	// already claimed by another reservation. Execute regenerates the
	// code and retries.
	ErrCodeTaken = errors.New("código de reserva ya asignado")
)

const (
	minPhoneDigits = 10
	maxPartySize   = 10

	// codeAttempts bounds regeneration: the suffix has 1000 values per
	// day, so a busy day can exhaust them and Save must eventually give
	// up instead of looping.
	codeAttempts = 5
)

type CreateReservationInput struct {
	Name      string
	Phone     string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	PartySize int
}

type CreateReservation struct {
	store ReservationStore
	now   func() time.Time
}

func NewCreateReservation(store ReservationStore) *CreateReservation {
	return &CreateReservation{store: store, now: time.Now}
}

func (uc *CreateReservation) Execute(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	now := uc.now()
	r := &domain.Reservation{
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      in.Date,
		Time:      in.Time,
		PartySize: in.PartySize,
		CreatedAt: now,
	}

	// Codes are short, so collisions are possible on a busy day; the
	// store rejects a claimed code and we roll a new one.
	var err error
	for i := 0; i < codeAttempts; i++ {
		r.Code = newReservationCode(now)
		err = uc.store.Save(ctx, r)
		if err == nil {
			logging.FromCtx(ctx).Info("reserva creada", "codigo", r.Code, "fecha", r.Date)
			return r, nil
		}
		if !errors.Is(err, ErrCodeTaken) {
			return nil, fmt.Errorf("guardar reserva: %w", err)
		}
	}
	return nil, fmt.Errorf("guardar reserva: %w", err)
}

func (uc *CreateReservation) validate(in CreateReservationInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return fmt.Errorf("%w: falta el nombre", ErrReservationInvalid)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("%w: el nombre solo admite letras y espacios", ErrReservationInvalid)
		}
	}

	phone := strings.TrimSpace(in.Phone)
	if len(phone) < minPhoneDigits {
		return fmt.Errorf("%w: el celular debe tener al menos %d dígitos", ErrReservationInvalid, minPhoneDigits)
	}
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: el celular solo admite dígitos", ErrReservationInvalid)
		}
	}

	if in.PartySize < 1 || in.PartySize > maxPartySize {
		return fmt.Errorf("%w: personas debe estar entre 1 y %d", ErrReservationInvalid, maxPartySize)
	}

	if in.Time == "" {
		return fmt.Errorf("%w: falta la hora", ErrReservationInvalid)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: hora inválida", ErrReservationInvalid)
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: fecha inválida", ErrReservationInvalid)
	}
	today := uc.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return fmt.Errorf("%w: la fecha debe ser igual o posterior a hoy", ErrReservationInvalid)
	}
	return nil
}

// newReservationCode builds codes like PL251203847: "PL", yymmdd of
// the issue date, three random digits. Same shape the storefront has
// always printed on receipts.
func newReservationCode(now time.Time) string {
	return fmt.Sprintf("PL%s%03d", now.Format("060102"), rand.Intn(1000))
}
