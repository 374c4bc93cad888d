package domain

// DepositNotification es el evento de depósito emitido por el canal push.
type DepositNotification struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Network   string `json:"network"`
	WalletID  string `json:"walletId"`
	Status    string `json:"status"` // PENDING, COMPLETED
	TxHash    string `json:"txHash"`
	CreatedAt string `json:"createdAt"`
}
