package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"payout-bot/internal/domain"
)

// PayoutService mantiene en memoria los pagos registrados vía la API REST.
type PayoutService struct {
	mu      sync.Mutex
	payouts []domain.Payout
}

// NewPayoutService crea un PayoutService vacío.
func NewPayoutService() *PayoutService {
	return &PayoutService{}
}

// CreatePayoutInput son los datos mínimos para registrar un pago.
type CreatePayoutInput struct {
	UserID   string
	Amount   string
	Currency string
	Notes    string
}

// Create registra un pago nuevo en estado PENDING.
func (s *PayoutService) Create(input CreatePayoutInput) domain.Payout {
	payout := domain.Payout{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Status:    "PENDING",
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.payouts = append(s.payouts, payout)
	s.mu.Unlock()

	return payout
}

// List devuelve los pagos, filtrados opcionalmente por estado y usuario.
func (s *PayoutService) List(status, userID string) []domain.Payout {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Payout, 0, len(s.payouts))
	for _, payout := range s.payouts {
		if status != "" && payout.Status != status {
			continue
		}
		if userID != "" && payout.UserID != userID {
			continue
		}
		result = append(result, payout)
	}
	return result
}

// Get busca un pago por su id.
func (s *PayoutService) Get(id string) (domain.Payout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, payout := range s.payouts {
		if payout.ID == id {
			return payout, true
		}
	}
	return domain.Payout{}, false
}
