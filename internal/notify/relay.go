package notify

import (
	"sync"

	"go.uber.org/zap"

	"payout-bot/internal/domain"
)

// DepositHandler recibe los eventos de depósito entregados por el canal push.
type DepositHandler func(domain.DepositNotification)

// Source abre canales push por organización. Lo implementa PusherClient.
type Source interface {
	Subscribe(organizationID, token string, handler DepositHandler) (Subscription, error)
}

// Subscription es un canal push abierto que puede cerrarse.
type Subscription interface {
	Close() error
}

// Relay reenvía los eventos de depósito de una organización al usuario
// suscrito. Mantiene como mucho una suscripción activa por usuario.
type Relay struct {
	logger *zap.Logger
	source Source

	mu   sync.Mutex
	subs map[int64]Subscription
}

// NewRelay crea un Relay sobre la fuente de canales dada.
func NewRelay(logger *zap.Logger, source Source) *Relay {
	return &Relay{
		logger: logger,
		source: source,
		subs:   make(map[int64]Subscription),
	}
}

// Subscribe abre un canal para la organización y lo asocia al usuario.
// Una suscripción previa del mismo usuario se cierra en el mismo
// intercambio, para no duplicar entregas ni filtrar canales aunque dos
// inicios de sesión del mismo usuario lleguen a la vez.
func (r *Relay) Subscribe(userID int64, organizationID, token string, handler DepositHandler) error {
	sub, err := r.source.Subscribe(organizationID, token, handler)
	if err != nil {
		return err
	}

	r.mu.Lock()
	prev := r.subs[userID]
	r.subs[userID] = sub
	r.mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			r.logger.Warn("close deposit subscription failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	r.logger.Info("deposit subscription opened",
		zap.Int64("user_id", userID),
		zap.String("organization_id", organizationID),
	)
	return nil
}

// Unsubscribe cierra el canal del usuario; no hace nada si no existe.
func (r *Relay) Unsubscribe(userID int64) {
	r.mu.Lock()
	sub, ok := r.subs[userID]
	if ok {
		delete(r.subs, userID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	if err := sub.Close(); err != nil {
		r.logger.Warn("close deposit subscription failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// Active indica si el usuario tiene una suscripción abierta.
func (r *Relay) Active(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.subs[userID]
	return ok
}
