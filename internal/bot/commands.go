package bot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"payout-bot/internal/domain"
)

const (
	unrecognizedReply = "I don't understand that command. Use /help to see available commands."
	historyPageSize   = 10
	historyShown      = 5
)

func (e *Engine) commandStart(userID int64) {
	e.sessions.Clear(userID)
	e.subs.Unsubscribe(userID)
	e.send(userID,
		"Welcome to Copperx Payout Bot! 🚀\n\n"+
			"This bot allows you to manage your USDC transactions directly through Telegram.\n\n"+
			"To get started, use /login to authenticate with your Copperx account.")
}

func (e *Engine) commandLogin(userID int64) {
	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingEmail
	})
	e.send(userID, "Please enter your email address:")
}

func (e *Engine) commandBalance(ctx context.Context, userID int64) {
	sess, ok := e.requireAuth(userID)
	if !ok {
		return
	}

	e.send(userID, "Fetching your wallet balances...")
	balances, err := e.wallets.GetBalances(ctx, sess.Token)
	if err != nil {
		e.logger.Warn("get balances failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error fetching balances. Please try again or use /login if you are not authenticated.")
		return
	}
	e.send(userID, FormatBalances(balances))
}

func (e *Engine) commandDeposit(ctx context.Context, userID int64) {
	sess, ok := e.requireAuth(userID)
	if !ok {
		return
	}

	e.send(userID, "Fetching your deposit addresses...")
	wallets, err := e.wallets.GetWallets(ctx, sess.Token)
	if err != nil {
		e.logger.Warn("get wallets failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error fetching deposit addresses. Please try again or use /login if you are not authenticated.")
		return
	}
	if len(wallets) == 0 {
		e.send(userID, "No wallets found. Please create a wallet on the Copperx platform first.")
		return
	}
	e.send(userID, "Your deposit addresses:\n\n"+FormatWallets(wallets))
}

func (e *Engine) commandSend(userID int64) {
	if _, ok := e.requireAuth(userID); !ok {
		return
	}
	e.send(userID, "Choose send method:",
		Button{Text: "Send to Email", Data: "send_email"},
		Button{Text: "Send to Wallet", Data: "send_wallet"},
	)
}

func (e *Engine) commandWithdraw(userID int64) {
	if _, ok := e.requireAuth(userID); !ok {
		return
	}
	e.send(userID, "Bank withdrawal functionality is coming soon. Please use the Copperx web platform for now.")
}

func (e *Engine) commandHistory(ctx context.Context, userID int64) {
	sess, ok := e.requireAuth(userID)
	if !ok {
		return
	}

	e.send(userID, "Fetching your transaction history...")
	history, err := e.transfers.GetTransferHistory(ctx, sess.Token, 1, historyPageSize)
	if err != nil {
		e.logger.Warn("get transfer history failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error fetching transaction history. Please try again or use /login if you are not authenticated.")
		return
	}
	if len(history.Items) == 0 {
		e.send(userID, "No transactions found.")
		return
	}

	e.send(userID, "Your recent transactions:")
	shown := history.Items
	if len(shown) > historyShown {
		shown = shown[:historyShown]
	}
	for _, transfer := range shown {
		e.send(userID, FormatTransaction(transfer))
	}
	if len(history.Items) > historyShown {
		e.send(userID, fmt.Sprintf(
			"Showing %d of %d transactions. Use the Copperx web platform to view all transactions.",
			historyShown, len(history.Items),
		))
	}
}

func (e *Engine) commandProfile(ctx context.Context, userID int64) {
	sess, ok := e.requireAuth(userID)
	if !ok {
		return
	}

	e.send(userID, "Fetching your profile information...")
	profile, err := e.auth.GetUserProfile(ctx, sess.Token)
	if err != nil {
		e.logger.Warn("get profile failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error fetching profile. Please try again or use /login if you are not authenticated.")
		return
	}
	kycStatus, err := e.auth.GetKycStatus(ctx, sess.Token)
	if err != nil {
		e.logger.Warn("get kyc status failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error fetching profile. Please try again or use /login if you are not authenticated.")
		return
	}
	e.send(userID, FormatProfile(profile, kycStatus))
}

func (e *Engine) commandHelp(userID int64) {
	e.send(userID,
		"Available commands:\n\n"+
			"/login - Login with Copperx credentials\n"+
			"/balance - Check wallet balances\n"+
			"/deposit - Get deposit address\n"+
			"/send - Send funds\n"+
			"/withdraw - Withdraw to bank account\n"+
			"/history - View transaction history\n"+
			"/profile - View account profile\n"+
			"/help - Display this help message")
}
