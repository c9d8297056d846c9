package dto

// Connection modes for the core-banking session.
type PowerOnMode string

const (
	PowerOnMock       PowerOnMode = "mock"
	PowerOnSymXchange PowerOnMode = "symxchange"
	PowerOnDirect     PowerOnMode = "direct"
)

// PowerOnConfig holds per-tenant connection parameters for the core. A zero
// value means credential resolution was skipped or failed; handlers fall back
// to mock behavior with generic wording.
type PowerOnConfig struct {
	Mode       PowerOnMode
	Host       string
	Port       string
	DeviceType string
	UserNumber string
	Password   string
}

func (c PowerOnConfig) IsZero() bool { return c.Host == "" && c.Mode == "" }

// CoreResult is the envelope every core domain call returns. Success=false or
// a nil Data is a domain-level failure the handler maps to an apology; it is
// never propagated as a Go error.
type CoreResult[T any] struct {
	Success bool
	Data    *T
	Error   string
}

type CoreAuthData struct {
	MemberID  string
	FirstName string
}

type CoreAccount struct {
	AccountType string
	Suffix      string
	Description string
	Balance     float64
	Available   float64
}

type CoreAccountsData struct {
	Accounts []CoreAccount
}

type CoreTransaction struct {
	Date        string
	Description string
	Amount      float64
	Type        string
}

type CoreTransactionsData struct {
	Transactions []CoreTransaction
}

type CoreTransferData struct {
	ConfirmationNumber string
}

type CoreCheckStatusData struct {
	Status string
}

type CoreStopPaymentData struct {
	ConfirmationNumber string
}

// CoreTransactionFilter narrows a transaction history fetch.
type CoreTransactionFilter struct {
	AccountType   string
	AccountSuffix string
	DaysBack      int
}
