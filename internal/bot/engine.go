package bot

import (
	"context"

	"go.uber.org/zap"

	"payout-bot/internal/copperx"
	"payout-bot/internal/domain"
	"payout-bot/internal/notify"
	"payout-bot/internal/session"
)

// AuthAPI cubre las operaciones de autenticación y perfil que usa el bot.
type AuthAPI interface {
	RequestOTP(ctx context.Context, email string) error
	AuthenticateOTP(ctx context.Context, email, otp string) (domain.AuthResponse, error)
	GetUserProfile(ctx context.Context, token string) (domain.User, error)
	GetKycStatus(ctx context.Context, token string) ([]domain.KycStatus, error)
}

// WalletAPI cubre las operaciones de billeteras que usa el bot.
type WalletAPI interface {
	GetWallets(ctx context.Context, token string) ([]domain.Wallet, error)
	GetBalances(ctx context.Context, token string) ([]domain.Balance, error)
}

// TransferAPI cubre las operaciones de transferencia que usa el bot.
type TransferAPI interface {
	SendEmailTransfer(ctx context.Context, token string, in copperx.EmailTransferInput) (domain.Transfer, error)
	SendWalletTransfer(ctx context.Context, token string, in copperx.WalletTransferInput) (domain.Transfer, error)
	GetTransferHistory(ctx context.Context, token string, page, limit int) (domain.TransferHistory, error)
}

// Subscriptions gestiona los canales de notificación de depósitos por usuario.
type Subscriptions interface {
	Subscribe(userID int64, organizationID, token string, handler notify.DepositHandler) error
	Unsubscribe(userID int64)
}

// Button es una opción inline presentada junto a una respuesta.
type Button struct {
	Text string
	Data string
}

// Notifier envía mensajes salientes al transporte de chat.
// Lo implementa el adaptador de transporte; el motor y el relay solo
// dependen de esta capacidad.
type Notifier interface {
	Send(userID int64, text string, buttons ...Button) error
}

// Update es un evento entrante del transporte de chat: un comando, la
// pulsación de un botón inline o texto libre.
type Update struct {
	UserID   int64
	Command  string
	Callback string
	Text     string
}

// Engine es la máquina de estados de conversación: decide, según la sesión
// y la entrada, la transición, la llamada remota y la respuesta.
type Engine struct {
	logger    *zap.Logger
	sessions  *session.Store
	auth      AuthAPI
	wallets   WalletAPI
	transfers TransferAPI
	subs      Subscriptions
	notifier  Notifier
}

// NewEngine crea una instancia de Engine con sus dependencias.
func NewEngine(
	logger *zap.Logger,
	sessions *session.Store,
	auth AuthAPI,
	wallets WalletAPI,
	transfers TransferAPI,
	subs Subscriptions,
	notifier Notifier,
) *Engine {
	return &Engine{
		logger:    logger,
		sessions:  sessions,
		auth:      auth,
		wallets:   wallets,
		transfers: transfers,
		subs:      subs,
		notifier:  notifier,
	}
}

// Handle procesa un evento entrante y emite las respuestas por el Notifier.
func (e *Engine) Handle(ctx context.Context, up Update) {
	switch {
	case up.Command != "":
		e.handleCommand(ctx, up.UserID, up.Command)
	case up.Callback != "":
		e.handleCallback(up.UserID, up.Callback)
	default:
		e.handleText(ctx, up.UserID, up.Text)
	}
}

func (e *Engine) handleCommand(ctx context.Context, userID int64, command string) {
	switch command {
	case "start":
		e.commandStart(userID)
	case "login":
		e.commandLogin(userID)
	case "balance":
		e.commandBalance(ctx, userID)
	case "deposit":
		e.commandDeposit(ctx, userID)
	case "send":
		e.commandSend(userID)
	case "withdraw":
		e.commandWithdraw(userID)
	case "history":
		e.commandHistory(ctx, userID)
	case "profile":
		e.commandProfile(ctx, userID)
	case "help":
		e.commandHelp(userID)
	default:
		e.send(userID, unrecognizedReply)
	}
}

func (e *Engine) handleCallback(userID int64, data string) {
	switch data {
	case "send_email":
		e.sessions.Update(userID, func(s *domain.Session) {
			s.State = domain.StateAwaitingRecipientEmail
			s.Draft = domain.TransferDraft{Type: domain.TransferTypeEmail}
		})
		e.send(userID, "Please enter recipient email:")
	case "send_wallet":
		e.sessions.Update(userID, func(s *domain.Session) {
			s.State = domain.StateAwaitingWalletAddress
			s.Draft = domain.TransferDraft{Type: domain.TransferTypeWallet}
		})
		e.send(userID, "Please enter wallet address:")
	default:
		e.send(userID, unrecognizedReply)
	}
}

// requireAuth devuelve la sesión si está autenticada; si no, responde con
// la invitación a /login y no toca el estado.
func (e *Engine) requireAuth(userID int64) (domain.Session, bool) {
	sess := e.sessions.Get(userID)
	if sess.State != domain.StateAuthenticated {
		e.send(userID, "You need to login first. Use /login to authenticate.")
		return domain.Session{}, false
	}
	return sess, true
}

func (e *Engine) send(userID int64, text string, buttons ...Button) {
	if err := e.notifier.Send(userID, text, buttons...); err != nil {
		e.logger.Warn("send reply failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}
