package bot

import (
	"fmt"
	"strings"

	"payout-bot/internal/domain"
)

var transferStatusEmoji = map[string]string{
	"PENDING":   "⏳",
	"COMPLETED": "✅",
	"FAILED":    "❌",
}

var kycStatusEmoji = map[string]string{
	"PENDING":       "⏳",
	"APPROVED":      "✅",
	"REJECTED":      "❌",
	"NOT_SUBMITTED": "📝",
}

// FormatBalances arma el listado de saldos para el chat.
func FormatBalances(balances []domain.Balance) string {
	if len(balances) == 0 {
		return "No balances found."
	}

	lines := make([]string, 0, len(balances))
	for _, balance := range balances {
		lines = append(lines, fmt.Sprintf("💰 %s %s (%s)", balance.Amount, balance.Currency, balance.Network))
	}
	return strings.Join(lines, "\n")
}

// FormatWallets arma el listado de direcciones de depósito.
func FormatWallets(wallets []domain.Wallet) string {
	blocks := make([]string, 0, len(wallets))
	for _, wallet := range wallets {
		block := fmt.Sprintf("Network: %s\nAddress: %s", wallet.Network, wallet.Address)
		if wallet.IsDefault {
			block += " (Default)"
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// FormatTransaction arma el detalle de una transferencia.
func FormatTransaction(transfer domain.Transfer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transaction ID: %s\n", transfer.ID)
	fmt.Fprintf(&b, "Type: %s\n", transfer.Type)
	fmt.Fprintf(&b, "Status: %s %s\n", transferStatusEmoji[transfer.Status], transfer.Status)
	fmt.Fprintf(&b, "Amount: %s %s\n", transfer.Amount, transfer.Currency)
	fmt.Fprintf(&b, "Fee: %s\n", transfer.Fee)
	fmt.Fprintf(&b, "Recipient: %s\n", transfer.Recipient)
	if transfer.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", transfer.Message)
	}
	fmt.Fprintf(&b, "Date: %s", transfer.CreatedAt)
	return b.String()
}

// FormatProfile arma la ficha de perfil con el primer estado KYC.
func FormatProfile(profile domain.User, kycStatus []domain.KycStatus) string {
	status := "NOT_SUBMITTED"
	if len(kycStatus) > 0 {
		status = kycStatus[0].Status
	}

	var b strings.Builder
	b.WriteString("👤 Profile Information:\n")
	fmt.Fprintf(&b, "Name: %s %s\n", profile.FirstName, profile.LastName)
	fmt.Fprintf(&b, "Email: %s\n", profile.Email)
	fmt.Fprintf(&b, "KYC Status: %s %s\n", kycStatusEmoji[status], status)
	fmt.Fprintf(&b, "Account Created: %s", profile.CreatedAt)
	return b.String()
}

// FormatDeposit arma el aviso de depósito recibido.
func FormatDeposit(deposit domain.DepositNotification) string {
	var b strings.Builder
	b.WriteString("💰 Deposit Received!\n\n")
	fmt.Fprintf(&b, "Amount: %s %s\n", deposit.Amount, deposit.Currency)
	fmt.Fprintf(&b, "Network: %s\n", deposit.Network)
	fmt.Fprintf(&b, "Status: %s\n", deposit.Status)
	fmt.Fprintf(&b, "Transaction Hash: %s", deposit.TxHash)
	return b.String()
}

func formatEmailSummary(draft domain.TransferDraft) string {
	var b strings.Builder
	b.WriteString("Please confirm your transfer:\n\n")
	fmt.Fprintf(&b, "Type: %s\n", draft.Type)
	fmt.Fprintf(&b, "Recipient: %s\n", draft.Recipient)
	fmt.Fprintf(&b, "Amount: %s %s\n", draft.Amount, draft.Currency)
	if draft.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", draft.Message)
	}
	b.WriteString("\nType \"confirm\" to proceed or \"cancel\" to cancel:")
	return b.String()
}

func formatWalletSummary(draft domain.TransferDraft) string {
	var b strings.Builder
	b.WriteString("Please confirm your transfer:\n\n")
	fmt.Fprintf(&b, "Type: %s\n", draft.Type)
	fmt.Fprintf(&b, "Address: %s\n", draft.Address)
	fmt.Fprintf(&b, "Network: %s\n", draft.Network)
	fmt.Fprintf(&b, "Amount: %s %s\n", draft.Amount, draft.Currency)
	b.WriteString("\nType \"confirm\" to proceed or \"cancel\" to cancel:")
	return b.String()
}
