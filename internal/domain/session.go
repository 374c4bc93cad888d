package domain

// SessionState identifica el paso de conversación que el bot espera del usuario.
type SessionState string

const (
	StateNone                   SessionState = "none"
	StateAwaitingEmail          SessionState = "awaiting_email"
	StateAwaitingOTP            SessionState = "awaiting_otp"
	StateAuthenticated          SessionState = "authenticated"
	StateAwaitingRecipientEmail SessionState = "awaiting_recipient_email"
	StateAwaitingWalletAddress  SessionState = "awaiting_wallet_address"
	StateAwaitingAmount         SessionState = "awaiting_amount"
	StateAwaitingCurrency       SessionState = "awaiting_currency"
	StateAwaitingMessage        SessionState = "awaiting_message"
	StateAwaitingNetwork        SessionState = "awaiting_network"
	StateAwaitingConfirmation   SessionState = "awaiting_confirmation"
)

// TransferType distingue el destino de un envío de fondos.
type TransferType string

const (
	TransferTypeEmail  TransferType = "EMAIL"
	TransferTypeWallet TransferType = "WALLET"
)

// TransferDraft acumula los campos de una transferencia en curso.
// Vive solo entre el inicio del flujo de envío y su confirmación o cancelación.
type TransferDraft struct {
	Type      TransferType
	Recipient string
	Address   string
	Amount    string
	Currency  string
	Message   string
	Network   string
}

// Session guarda el estado de conversación de un usuario del bot.
type Session struct {
	UserID         int64
	ChatID         int64
	State          SessionState
	Email          string
	OTP            string
	Token          string
	RefreshToken   string
	OrganizationID string
	Draft          TransferDraft
}
