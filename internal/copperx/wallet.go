package copperx

import (
	"context"

	"payout-bot/internal/domain"
)

// WalletService expone las operaciones de billeteras de la API.
type WalletService struct {
	client *Client
}

// NewWalletService crea una instancia de WalletService sobre el cliente dado.
func NewWalletService(client *Client) *WalletService {
	return &WalletService{client: client}
}

// GetWallets lista las billeteras de la organización.
func (s *WalletService) GetWallets(ctx context.Context, token string) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := s.client.Get(ctx, token, "/wallets", &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetBalances lista los saldos disponibles por moneda y red.
func (s *WalletService) GetBalances(ctx context.Context, token string) ([]domain.Balance, error) {
	var balances []domain.Balance
	if err := s.client.Get(ctx, token, "/wallets/balances", &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// SetDefaultWallet marca una billetera como la predeterminada.
func (s *WalletService) SetDefaultWallet(ctx context.Context, token, walletID string) (domain.Wallet, error) {
	body := map[string]string{"walletId": walletID}
	var wallet domain.Wallet
	if err := s.client.Put(ctx, token, "/wallets/default", body, &wallet); err != nil {
		return domain.Wallet{}, err
	}
	return wallet, nil
}
