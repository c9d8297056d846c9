package poweron

import (
	"context"
	"time"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/pkg/helpers"
)

// mockSession is the in-memory core used in mock mode and whenever tenant
// credentials could not be resolved. Data is canned but the session protocol
// (connect before use, disconnect after) is enforced the same way.
type mockSession struct {
	connected bool
}

func newMockSession() *mockSession {
	return &mockSession{}
}

func (m *mockSession) Connect(_ context.Context) error {
	m.connected = true
	return nil
}

func (m *mockSession) Disconnect(_ context.Context) error {
	m.connected = false
	return nil
}

func (m *mockSession) AuthenticateMember(_ context.Context, ani, pin, ssnLast4, birthDate string) (dto.CoreResult[dto.CoreAuthData], error) {
	if pin == "" && (ssnLast4 == "" || birthDate == "") {
		return dto.CoreResult[dto.CoreAuthData]{
			Success: false,
			Error:   "missing credentials",
		}, nil
	}
	return dto.CoreResult[dto.CoreAuthData]{
		Success: true,
		Data: helpers.Ptr(dto.CoreAuthData{
			MemberID:  "M100042",
			FirstName: "Alex",
		}),
	}, nil
}

func (m *mockSession) GetAccounts(_ context.Context, memberID string) (dto.CoreResult[dto.CoreAccountsData], error) {
	return dto.CoreResult[dto.CoreAccountsData]{
		Success: true,
		Data: helpers.Ptr(dto.CoreAccountsData{
			Accounts: []dto.CoreAccount{
				{AccountType: "checking", Suffix: "0001", Description: "Free Checking", Balance: 1254.32, Available: 1204.32},
				{AccountType: "savings", Suffix: "0002", Description: "Primary Savings", Balance: 5830.10, Available: 5830.10},
			},
		}),
	}, nil
}

func (m *mockSession) GetTransactions(_ context.Context, memberID string, filter dto.CoreTransactionFilter) (dto.CoreResult[dto.CoreTransactionsData], error) {
	day := 24 * time.Hour
	now := time.Now()
	txs := []dto.CoreTransaction{
		{Date: now.Add(-1 * day).Format("2006-01-02"), Description: "Grocery Mart", Amount: -54.18, Type: "debit"},
		{Date: now.Add(-3 * day).Format("2006-01-02"), Description: "Payroll Deposit", Amount: 1850.00, Type: "credit"},
		{Date: now.Add(-5 * day).Format("2006-01-02"), Description: "Coffee Stop", Amount: -6.75, Type: "debit"},
	}
	return dto.CoreResult[dto.CoreTransactionsData]{
		Success: true,
		Data:    helpers.Ptr(dto.CoreTransactionsData{Transactions: txs}),
	}, nil
}

func (m *mockSession) TransferFunds(_ context.Context, memberID, fromAccount, toAccount string, amount float64) (dto.CoreResult[dto.CoreTransferData], error) {
	// Mock core omits the confirmation number; the handler synthesizes one.
	return dto.CoreResult[dto.CoreTransferData]{
		Success: true,
		Data:    helpers.Ptr(dto.CoreTransferData{}),
	}, nil
}

func (m *mockSession) GetCheckStatus(_ context.Context, memberID, checkNumber, accountSuffix string) (dto.CoreResult[dto.CoreCheckStatusData], error) {
	return dto.CoreResult[dto.CoreCheckStatusData]{
		Success: true,
		Data:    helpers.Ptr(dto.CoreCheckStatusData{Status: "cleared"}),
	}, nil
}

func (m *mockSession) PlaceStopPayment(_ context.Context, memberID, checkNumber, accountSuffix string, amount float64) (dto.CoreResult[dto.CoreStopPaymentData], error) {
	return dto.CoreResult[dto.CoreStopPaymentData]{
		Success: true,
		Data:    helpers.Ptr(dto.CoreStopPaymentData{ConfirmationNumber: "SP" + checkNumber}),
	}, nil
}
