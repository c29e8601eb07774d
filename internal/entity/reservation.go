package domain

import "time"

// Reservation is a table booking. Reservations live in Redis with a
// TTL rather than in MySQL: they are short-lived and the storefront
// only ever fetches them back by code.
type Reservation struct {
	Code      string    `json:"codigo"`
	Name      string    `json:"nombre"`
	Phone     string    `json:"celular"`
	Date      string    `json:"fecha"` // YYYY-MM-DD
	Time      string    `json:"hora"`  // HH:MM, 24h
	PartySize int       `json:"personas"`
	CreatedAt time.Time `json:"creada"`
}
