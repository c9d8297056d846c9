package services

import (
	"context"
	"fmt"

	"github.com/connexcu/voice-backend/internal/client/poweron"
	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/speech"
	"github.com/connexcu/voice-backend/pkg/logger"
)

// apology is the fallback utterance for core-banking failures. Every handler
// path must produce a speakable message; the voice layer has no other way to
// tell the caller something went wrong.
const apology = "I'm sorry, I'm having trouble accessing your account information right now. Please try again in a moment."

// withCore runs fn against a fresh core-banking session under the configured
// timeout. The session is exclusively owned by this invocation: one connect,
// exactly one disconnect once connected, never cached. Connect failures yield
// the handler-provided fallback result instead of an error.
func withCore[R any](ctx context.Context, s *toolService, tc *callContext, fail R, fn func(ctx context.Context, core poweron.Session) R) R {
	if s.coreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.coreTimeout)
		defer cancel()
	}

	core := s.core.NewSession(tc.PowerOn)
	if err := core.Connect(ctx); err != nil {
		logger.FromContext(ctx).Error("core session connect failed", "error", err)
		return fail
	}
	defer func() {
		if err := core.Disconnect(ctx); err != nil {
			logger.FromContext(ctx).Warn("core session disconnect failed", "error", err)
		}
	}()

	return fn(ctx, core)
}

func (s *toolService) authenticateMember(ctx context.Context, args dto.AuthenticateMemberArgs, tc *callContext) dto.AuthenticateMemberResult {
	log := logger.FromContext(ctx)

	// No caller phone number means no identity signal to verify against.
	// Terminal for this handler only; no core session is opened.
	if tc.ANI == "" {
		return dto.AuthenticateMemberResult{
			Authenticated: false,
			Message:       "I wasn't able to identify the phone number you're calling from, so I can't verify you on this call. Please contact member services for assistance.",
		}
	}

	fail := dto.AuthenticateMemberResult{
		Authenticated: false,
		Message:       "I'm sorry, I couldn't verify your identity right now. Please try again in a moment.",
	}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.AuthenticateMemberResult {
		res, err := core.AuthenticateMember(ctx, tc.ANI, args.PIN, args.SSNLast4, args.BirthDate)
		if err != nil {
			log.Error("core authenticate failed", "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return dto.AuthenticateMemberResult{
				Authenticated: false,
				Message:       "I wasn't able to verify your identity with the information provided. Please check it and try again.",
			}
		}

		// The only write-back in the whole flow: persist the verified member
		// on the call session so later tools in this call skip re-auth.
		if tc.SessionID != "" {
			if err := s.sessions.MarkVerified(ctx, tc.SessionID, res.Data.MemberID); err != nil {
				log.Warn("failed to persist verified session", "session_id", tc.SessionID, "error", err)
			}
		}
		tc.MemberID = res.Data.MemberID
		tc.Verified = true

		message := "You're verified. How can I help you today?"
		if res.Data.FirstName != "" {
			message = fmt.Sprintf("Thanks %s, you're verified. How can I help you today?", res.Data.FirstName)
		}
		return dto.AuthenticateMemberResult{
			Authenticated: true,
			MemberID:      res.Data.MemberID,
			FirstName:     res.Data.FirstName,
			Message:       message,
		}
	})
}

func (s *toolService) getAccountBalances(ctx context.Context, args dto.AccountBalancesArgs, tc *callContext) dto.AccountBalancesResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" {
		return dto.AccountBalancesResult{
			Message: "I need to verify your identity before I can look up account balances.",
		}
	}

	fail := dto.AccountBalancesResult{Message: apology}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.AccountBalancesResult {
		res, err := core.GetAccounts(ctx, member)
		if err != nil {
			log.Error("core get accounts failed", "member_id", member, "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return fail
		}
		if len(res.Data.Accounts) == 0 {
			return dto.AccountBalancesResult{
				Accounts: []dto.AccountBalance{},
				Message:  "I couldn't find any accounts for your membership.",
			}
		}

		accounts := make([]dto.AccountBalance, 0, len(res.Data.Accounts))
		phrases := make([]string, 0, len(res.Data.Accounts))
		for _, acct := range res.Data.Accounts {
			accounts = append(accounts, dto.AccountBalance{
				AccountType: acct.AccountType,
				Suffix:      acct.Suffix,
				Balance:     acct.Balance,
				Available:   acct.Available,
			})
			phrases = append(phrases, fmt.Sprintf("Your %s account has a balance of %s.", acct.AccountType, speech.Dollars(acct.Balance)))
		}

		summary := speech.JoinSentences(phrases...)
		return dto.AccountBalancesResult{
			Accounts: accounts,
			Summary:  summary,
			Message:  speech.JoinSentences(summary, "Would you like to hear details about any specific account?"),
		}
	})
}

func (s *toolService) getAccountTransactions(ctx context.Context, args dto.AccountTransactionsArgs, tc *callContext) dto.AccountTransactionsResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" {
		return dto.AccountTransactionsResult{
			Message: "I need to verify your identity before I can look up transactions.",
		}
	}

	daysBack := args.DaysBack
	if daysBack <= 0 {
		daysBack = 30
	}

	fail := dto.AccountTransactionsResult{Message: apology}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.AccountTransactionsResult {
		res, err := core.GetTransactions(ctx, member, dto.CoreTransactionFilter{
			AccountType:   args.AccountType,
			AccountSuffix: args.AccountSuffix,
			DaysBack:      daysBack,
		})
		if err != nil {
			log.Error("core get transactions failed", "member_id", member, "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return fail
		}

		txs := make([]dto.Transaction, 0, len(res.Data.Transactions))
		for _, tx := range res.Data.Transactions {
			txs = append(txs, dto.Transaction{
				Date:        tx.Date,
				Description: tx.Description,
				Amount:      tx.Amount,
				Type:        tx.Type,
			})
		}

		if len(txs) == 0 {
			return dto.AccountTransactionsResult{
				Transactions: txs,
				Count:        0,
				Message:      fmt.Sprintf("I didn't find any transactions in the last %d days.", daysBack),
			}
		}

		// Only the first five are read aloud; the full list still rides along
		// in the structured result.
		spoken := txs
		if len(spoken) > 5 {
			spoken = spoken[:5]
		}
		phrases := make([]string, 0, len(spoken))
		for _, tx := range spoken {
			phrases = append(phrases, fmt.Sprintf("On %s, %s for %s.", tx.Date, tx.Description, speech.Dollars(abs(tx.Amount))))
		}
		summary := speech.JoinSentences(phrases...)

		return dto.AccountTransactionsResult{
			Transactions: txs,
			Count:        len(txs),
			Summary:      summary,
			Message: speech.JoinSentences(
				fmt.Sprintf("I found %d transactions in the last %d days. Here are the most recent:", len(txs), daysBack),
				summary,
			),
		}
	})
}

func (s *toolService) transferFunds(ctx context.Context, args dto.TransferFundsArgs, tc *callContext) dto.TransferFundsResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" || args.FromAccount == "" || args.ToAccount == "" || args.Amount <= 0 {
		return dto.TransferFundsResult{
			Message: "I need the account to transfer from, the account to transfer to, and the amount before I can move any money.",
		}
	}

	fail := dto.TransferFundsResult{Message: "I'm sorry, I couldn't complete that transfer right now. Your accounts have not been changed. Please try again in a moment."}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.TransferFundsResult {
		res, err := core.TransferFunds(ctx, member, args.FromAccount, args.ToAccount, args.Amount)
		if err != nil {
			log.Error("core transfer failed", "member_id", member, "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return fail
		}

		confirmation := res.Data.ConfirmationNumber
		if confirmation == "" {
			confirmation = s.confirmationNumber("TXF")
		}

		return dto.TransferFundsResult{
			ConfirmationNumber: confirmation,
			Amount:             args.Amount,
			From:               args.FromAccount,
			To:                 args.ToAccount,
			Message: fmt.Sprintf("I've transferred %s from your %s account to your %s account. Your confirmation number is %s.",
				speech.Dollars(args.Amount), args.FromAccount, args.ToAccount, confirmation),
		}
	})
}

func (s *toolService) checkStatusInquiry(ctx context.Context, args dto.CheckStatusArgs, tc *callContext) dto.CheckStatusResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" || args.CheckNumber == "" {
		return dto.CheckStatusResult{
			Message: "Which check number would you like me to look into?",
		}
	}

	fail := dto.CheckStatusResult{Status: "unknown", Message: apology}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.CheckStatusResult {
		res, err := core.GetCheckStatus(ctx, member, args.CheckNumber, args.AccountSuffix)
		if err != nil {
			log.Error("core check status failed", "member_id", member, "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return fail
		}

		switch res.Data.Status {
		case "cleared":
			return dto.CheckStatusResult{
				Status:  "cleared",
				Message: fmt.Sprintf("Check number %s has cleared your account.", args.CheckNumber),
			}
		case "pending":
			return dto.CheckStatusResult{
				Status:  "pending",
				Message: fmt.Sprintf("Check number %s has not cleared your account yet.", args.CheckNumber),
			}
		case "stopped":
			return dto.CheckStatusResult{
				Status:  "stopped",
				Message: fmt.Sprintf("A stop payment has been placed on check number %s.", args.CheckNumber),
			}
		default:
			return dto.CheckStatusResult{
				Status:  "unknown",
				Message: fmt.Sprintf("I couldn't find a record of check number %s on your account.", args.CheckNumber),
			}
		}
	})
}

func (s *toolService) stopPayment(ctx context.Context, args dto.StopPaymentArgs, tc *callContext) dto.StopPaymentResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" || args.CheckNumber == "" {
		return dto.StopPaymentResult{
			Message: "Which check number would you like to stop payment on?",
		}
	}

	fail := dto.StopPaymentResult{Message: "I'm sorry, I couldn't place that stop payment right now. Please try again in a moment."}

	return withCore(ctx, s, tc, fail, func(ctx context.Context, core poweron.Session) dto.StopPaymentResult {
		res, err := core.PlaceStopPayment(ctx, member, args.CheckNumber, args.AccountSuffix, args.Amount)
		if err != nil {
			log.Error("core stop payment failed", "member_id", member, "error", err)
			return fail
		}
		if !res.Success || res.Data == nil {
			return fail
		}

		message := fmt.Sprintf("I've placed a stop payment on check number %s. Please note a stop payment fee may apply to your account.", args.CheckNumber)
		if res.Data.ConfirmationNumber != "" {
			message = speech.JoinSentences(message, fmt.Sprintf("Your confirmation number is %s.", res.Data.ConfirmationNumber))
		}
		return dto.StopPaymentResult{
			ConfirmationNumber: res.Data.ConfirmationNumber,
			Message:            message,
		}
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
