package domain

// Transfer es una transferencia registrada en la API de Copperx.
type Transfer struct {
	ID        string `json:"id"`
	Type      string `json:"type"`   // EMAIL, WALLET, BANK
	Status    string `json:"status"` // PENDING, COMPLETED, FAILED
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Fee       string `json:"fee"`
	Recipient string `json:"recipient"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// TransferHistory es una página del historial de transferencias.
type TransferHistory struct {
	Items []Transfer `json:"items"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
