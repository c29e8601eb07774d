package usecase

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	domain "github.com/papaslocas/sales-api/internal/entity"
)

// Plain-text confirmation the customer keeps as proof of the booking.
// The storefront offers it as a downloadable .txt file.
var receiptTmpl = template.Must(template.New("comprobante").Parse(`===========================================================
           PAPAS LOCAS - RESERVA CONFIRMADA
===========================================================

INFORMACIÓN DE LA RESERVA
-----------------------------------------------------------
    Nombre completo:     {{.Name}}
    Teléfono/WhatsApp:   {{.Phone}}
    Fecha de reserva:    {{.DateLong}}
    Número de personas:  {{.PartySize}}
    Hora:                {{.Time12h}}
    Código de reserva:   {{.Code}}

UBICACIÓN DEL RESTAURANTE
-----------------------------------------------------------
    Dirección: Barrio Centro
    Ciudad:    Villagarzón - Putumayo

IMPORTANTE
-----------------------------------------------------------
    - Llegar 10 minutos antes de la hora reservada
    - Confirmar asistencia 24 horas antes al: 312739897
    - En caso de cancelación, avisar con anticipación
    - Presenta el código de reserva al llegar: {{.Code}}

-----------------------------------------------------------
¡GRACIAS POR ELEGIR PAPAS LOCAS!
"Crujientes, jugosas y llenas de actitud"

    Reserva generada:   {{.Issued}}
    Código de reserva:  {{.Code}}

Este documento es el comprobante de tu reserva.
===========================================================
`))

var (
	spanishDays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

	spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// ReceiptFilename is the suggested download name for the receipt.
func ReceiptFilename(r *domain.Reservation) string {
	name := strings.ReplaceAll(strings.TrimSpace(r.Name), " ", "_")
	return fmt.Sprintf("Reserva_PapasLocas_%s_%s_%s.txt", name, r.Date, r.Code)
}

// RenderReceipt fills the confirmation template for one reservation.
func RenderReceipt(r *domain.Reservation) (string, error) {
	var sb strings.Builder
	err := receiptTmpl.Execute(&sb, struct {
		*domain.Reservation
		DateLong string
		Time12h  string
		Issued   string
	}{
		Reservation: r,
		DateLong:    spanishDate(r.Date),
		Time12h:     twelveHour(r.Time),
		Issued:      r.CreatedAt.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("render comprobante: %w", err)
	}
	return sb.String(), nil
}

// spanishDate turns "2026-09-05" into "viernes, 5 de septiembre de 2026".
// Falls back to the raw value when it does not parse.
func spanishDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishDays[d.Weekday()], d.Day(), spanishMonths[d.Month()-1], d.Year())
}

// twelveHour turns "19:30" into "7:30 PM".
func twelveHour(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}
