package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/papaslocas/sales-api/internal/entity"
)

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		Code:      "PL260901123",
		Name:      "Carlos Gómez",
		Phone:     "3127398970",
		Date:      "2026-09-05",
		Time:      "19:30",
		PartySize: 4,
		CreatedAt: time.Date(2026, 9, 1, 18, 30, 0, 0, time.Local),
	}
}

func TestRenderReceipt(t *testing.T) {
	body, err := RenderReceipt(sampleReservation())
	require.NoError(t, err)

	assert.Contains(t, body, "PAPAS LOCAS - RESERVA CONFIRMADA")
	assert.Contains(t, body, "Carlos Gómez")
	assert.Contains(t, body, "3127398970")
	assert.Contains(t, body, "sábado, 5 de septiembre de 2026")
	assert.Contains(t, body, "7:30 PM")
	assert.Contains(t, body, "PL260901123")
}

func TestReceiptFilename(t *testing.T) {
	got := ReceiptFilename(sampleReservation())
	assert.Equal(t, "Reserva_PapasLocas_Carlos_Gómez_2026-09-05_PL260901123.txt", got)
}

func TestSpanishDate(t *testing.T) {
	assert.Equal(t, "martes, 1 de septiembre de 2026", spanishDate("2026-09-01"))
	assert.Equal(t, "viernes, 25 de diciembre de 2026", spanishDate("2026-12-25"))
	// unparseable values pass through untouched
	assert.Equal(t, "mañana", spanishDate("mañana"))
}

func TestTwelveHour(t *testing.T) {
	assert.Equal(t, "12:15 PM", twelveHour("12:15"))
	assert.Equal(t, "12:00 AM", twelveHour("00:00"))
	assert.Equal(t, "7:05 AM", twelveHour("07:05"))
	assert.Equal(t, "25:99", twelveHour("25:99"))
}
