package domain

import "time"

// Payout es un pago registrado a través de la API REST del bot.
type Payout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"` // PENDING, PROCESSING, COMPLETED, FAILED
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
