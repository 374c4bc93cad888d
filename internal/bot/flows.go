package bot

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"payout-bot/internal/copperx"
	"payout-bot/internal/domain"
)

func (e *Engine) handleText(ctx context.Context, userID int64, text string) {
	sess := e.sessions.Get(userID)

	switch sess.State {
	case domain.StateAwaitingEmail:
		e.handleEmailInput(ctx, userID, text)
	case domain.StateAwaitingOTP:
		e.handleOTPInput(ctx, userID, text)
	case domain.StateAwaitingRecipientEmail:
		e.handleRecipientEmailInput(userID, text)
	case domain.StateAwaitingWalletAddress:
		e.handleWalletAddressInput(userID, text)
	case domain.StateAwaitingAmount:
		e.handleAmountInput(userID, text)
	case domain.StateAwaitingCurrency:
		e.handleCurrencyInput(userID, text)
	case domain.StateAwaitingMessage:
		e.handleMessageInput(userID, text)
	case domain.StateAwaitingNetwork:
		e.handleNetworkInput(userID, text)
	case domain.StateAwaitingConfirmation:
		e.handleConfirmationInput(ctx, userID, text)
	default:
		// Texto libre fuera de un flujo: no es un error, solo no se entiende.
		e.send(userID, unrecognizedReply)
	}
}

func (e *Engine) handleEmailInput(ctx context.Context, userID int64, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		e.send(userID, "Please enter your email address:")
		return
	}

	if err := e.auth.RequestOTP(ctx, email); err != nil {
		e.logger.Warn("request otp failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Error sending OTP. Please check your email and try again.")
		return
	}

	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingOTP
		s.Email = email
	})
	e.send(userID, fmt.Sprintf("OTP sent to %s. Please enter the OTP code:", email))
}

func (e *Engine) handleOTPInput(ctx context.Context, userID int64, otp string) {
	sess := e.sessions.Get(userID)

	authResp, err := e.auth.AuthenticateOTP(ctx, sess.Email, otp)
	if err != nil {
		e.logger.Warn("authenticate otp failed", zap.Int64("user_id", userID), zap.Error(err))
		e.send(userID, "Authentication failed. Please check your OTP and try again with /login.")
		// Un OTP rechazado obliga a reiniciar el login desde cero.
		e.sessions.Update(userID, func(s *domain.Session) {
			*s = domain.Session{UserID: s.UserID, ChatID: s.ChatID, State: domain.StateNone}
		})
		return
	}

	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAuthenticated
		s.Token = authResp.Token
		s.RefreshToken = authResp.RefreshToken
		s.OrganizationID = authResp.User.OrganizationID
		s.OTP = ""
	})

	if err := e.subs.Subscribe(userID, authResp.User.OrganizationID, authResp.Token, func(deposit domain.DepositNotification) {
		e.send(userID, FormatDeposit(deposit))
	}); err != nil {
		e.logger.Warn("deposit subscription failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	e.send(userID, fmt.Sprintf(
		"Authentication successful! Welcome, %s.\n\nUse /help to see available commands.",
		authResp.User.FirstName,
	))
}

func (e *Engine) handleRecipientEmailInput(userID int64, email string) {
	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingAmount
		s.Draft.Recipient = email
	})
	e.send(userID, "Please enter the amount to send:")
}

func (e *Engine) handleWalletAddressInput(userID int64, address string) {
	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingAmount
		s.Draft.Address = address
	})
	e.send(userID, "Please enter the amount to send:")
}

func (e *Engine) handleAmountInput(userID int64, amount string) {
	amount = strings.TrimSpace(amount)
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		// Entrada inválida: se repite la pregunta sin avanzar de estado.
		e.send(userID, "Please enter a valid amount (greater than 0):")
		return
	}

	e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingCurrency
		s.Draft.Amount = amount
	})
	e.send(userID, "Please enter the currency (e.g., USDC):")
}

func (e *Engine) handleCurrencyInput(userID int64, currency string) {
	sess := e.sessions.Update(userID, func(s *domain.Session) {
		s.Draft.Currency = currency
		if s.Draft.Type == domain.TransferTypeWallet {
			s.State = domain.StateAwaitingNetwork
		} else {
			s.State = domain.StateAwaitingMessage
		}
	})

	if sess.State == domain.StateAwaitingNetwork {
		e.send(userID, "Please enter the network (e.g., ETH):")
		return
	}
	e.send(userID, `Please enter an optional message (or type "skip" to skip):`)
}

func (e *Engine) handleMessageInput(userID int64, message string) {
	sess := e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingConfirmation
		if !strings.EqualFold(message, "skip") {
			s.Draft.Message = message
		}
	})
	e.send(userID, formatEmailSummary(sess.Draft))
}

func (e *Engine) handleNetworkInput(userID int64, network string) {
	sess := e.sessions.Update(userID, func(s *domain.Session) {
		s.State = domain.StateAwaitingConfirmation
		s.Draft.Network = network
	})
	e.send(userID, formatWalletSummary(sess.Draft))
}

func (e *Engine) handleConfirmationInput(ctx context.Context, userID int64, confirmation string) {
	sess := e.sessions.Get(userID)
	draft := sess.Draft

	// Cualquier texto distinto de "confirm" cancela el borrador.
	finish := func() {
		e.sessions.Update(userID, func(s *domain.Session) {
			s.State = domain.StateAuthenticated
			s.Draft = domain.TransferDraft{}
		})
	}

	if !strings.EqualFold(confirmation, "confirm") {
		e.send(userID, "Transfer cancelled.")
		finish()
		return
	}

	var (
		transfer domain.Transfer
		err      error
	)
	switch draft.Type {
	case domain.TransferTypeWallet:
		transfer, err = e.transfers.SendWalletTransfer(ctx, sess.Token, copperx.WalletTransferInput{
			Amount:   draft.Amount,
			Currency: draft.Currency,
			Address:  draft.Address,
			Network:  draft.Network,
		})
	default:
		transfer, err = e.transfers.SendEmailTransfer(ctx, sess.Token, copperx.EmailTransferInput{
			Amount:    draft.Amount,
			Currency:  draft.Currency,
			Recipient: draft.Recipient,
			Message:   draft.Message,
		})
	}

	if err != nil {
		e.logger.Warn("transfer failed",
			zap.Int64("user_id", userID),
			zap.String("transfer_type", string(draft.Type)),
			zap.Error(err),
		)
		e.send(userID, "Error processing transfer. Please try again later.")
		finish()
		return
	}

	e.send(userID, fmt.Sprintf("Transfer initiated successfully! Transaction ID: %s", transfer.ID))
	finish()
}
