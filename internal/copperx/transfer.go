package copperx

import (
	"context"
	"fmt"

	"payout-bot/internal/domain"
)

// EmailTransferInput es el cuerpo de una transferencia a un correo.
type EmailTransferInput struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Recipient string `json:"recipient"`
	Message   string `json:"message,omitempty"`
}

// WalletTransferInput es el cuerpo de un retiro a una billetera externa.
type WalletTransferInput struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Network  string `json:"network"`
}

// BankWithdrawalInput es el cuerpo de un retiro a cuenta bancaria.
type BankWithdrawalInput struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	BankID   string `json:"bankId"`
}

// TransferService expone las operaciones de transferencia de la API.
type TransferService struct {
	client *Client
}

// NewTransferService crea una instancia de TransferService sobre el cliente dado.
func NewTransferService(client *Client) *TransferService {
	return &TransferService{client: client}
}

// SendEmailTransfer envía fondos a un destinatario identificado por correo.
func (s *TransferService) SendEmailTransfer(ctx context.Context, token string, in EmailTransferInput) (domain.Transfer, error) {
	var transfer domain.Transfer
	if err := s.client.Post(ctx, token, "/transfers/send", in, &transfer); err != nil {
		return domain.Transfer{}, err
	}
	return transfer, nil
}

// SendWalletTransfer retira fondos hacia una dirección de billetera externa.
func (s *TransferService) SendWalletTransfer(ctx context.Context, token string, in WalletTransferInput) (domain.Transfer, error) {
	var transfer domain.Transfer
	if err := s.client.Post(ctx, token, "/transfers/wallet-withdraw", in, &transfer); err != nil {
		return domain.Transfer{}, err
	}
	return transfer, nil
}

// SendBankWithdrawal retira fondos hacia una cuenta bancaria registrada.
func (s *TransferService) SendBankWithdrawal(ctx context.Context, token string, in BankWithdrawalInput) (domain.Transfer, error) {
	var transfer domain.Transfer
	if err := s.client.Post(ctx, token, "/transfers/offramp", in, &transfer); err != nil {
		return domain.Transfer{}, err
	}
	return transfer, nil
}

// GetTransferHistory devuelve una página del historial de transferencias.
func (s *TransferService) GetTransferHistory(ctx context.Context, token string, page, limit int) (domain.TransferHistory, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	var history domain.TransferHistory
	path := fmt.Sprintf("/transfers?page=%d&limit=%d", page, limit)
	if err := s.client.Get(ctx, token, path, &history); err != nil {
		return domain.TransferHistory{}, err
	}
	return history, nil
}
