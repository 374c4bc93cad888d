package domain

// Wallet es una billetera de depósito asociada a la organización.
type Wallet struct {
	ID        string `json:"id"`
	Network   string `json:"network"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

// Balance es el saldo disponible en una moneda y red concretas.
type Balance struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Network  string `json:"network"`
}
