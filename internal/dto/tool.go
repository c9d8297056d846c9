package dto

// ToolInvocation is one inbound request from the voice platform. Parameters
// stay untyped at this layer; the dispatcher re-decodes them into the typed
// args structs below once the tool name is known.
type ToolInvocation struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
	SessionID  string         `json:"session_id,omitempty"`
	CallSID    string         `json:"call_sid,omitempty"`
	TenantID   string         `json:"tenant_id,omitempty"`
	CUID       string         `json:"cu_id,omitempty"`
}

// --- Per-tool argument structs ---
// Field names follow the voice platform's snake_case parameter contract.

type AuthenticateMemberArgs struct {
	PIN       string `json:"pin,omitempty"`
	SSNLast4  string `json:"ssn_last_four,omitempty"`
	BirthDate string `json:"date_of_birth,omitempty"`
}

type AccountBalancesArgs struct {
	MemberID string `json:"member_id"`
}

type AccountTransactionsArgs struct {
	MemberID      string `json:"member_id"`
	AccountType   string `json:"account_type,omitempty"`
	AccountSuffix string `json:"account_suffix,omitempty"`
	DaysBack      int    `json:"days_back,omitempty"`
}

type TransferFundsArgs struct {
	MemberID    string  `json:"member_id"`
	FromAccount string  `json:"from_account"`
	ToAccount   string  `json:"to_account"`
	Amount      float64 `json:"amount"`
}

type ReportLostCardArgs struct {
	MemberID string `json:"member_id"`
	CardType string `json:"card_type"`
	LastFour string `json:"last_four"`
	Reason   string `json:"reason"`
}

type RoutingInfoArgs struct {
	MemberID      string `json:"member_id"`
	AccountType   string `json:"account_type"`
	AccountSuffix string `json:"account_suffix"`
}

type TravelNotificationArgs struct {
	MemberID    string `json:"member_id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CheckStatusArgs struct {
	MemberID      string `json:"member_id"`
	CheckNumber   string `json:"check_number"`
	AccountSuffix string `json:"account_suffix"`
}

type StopPaymentArgs struct {
	MemberID      string  `json:"member_id"`
	CheckNumber   string  `json:"check_number"`
	AccountSuffix string  `json:"account_suffix"`
	Amount        float64 `json:"amount,omitempty"`
}

type FindATMBranchArgs struct {
	ZipCode      string `json:"zip_code"`
	LocationType string `json:"location_type,omitempty"` // "atm", "branch", or "both"
}

type RequestStatementArgs struct {
	MemberID        string `json:"member_id"`
	AccountType     string `json:"account_type"`
	AccountSuffix   string `json:"account_suffix"`
	DeliveryMethod  string `json:"delivery_method"`
	StatementPeriod string `json:"statement_period,omitempty"`
}

type UpdateCreditLimitArgs struct {
	MemberID       string  `json:"member_id"`
	CardLastFour   string  `json:"card_last_four"`
	RequestedLimit float64 `json:"requested_limit"`
}

type BiometricEnrollmentArgs struct {
	MemberID string `json:"member_id"`
	OptIn    bool   `json:"opt_in"`
}

// --- Per-tool result structs ---
// Every result carries a Message suitable for text-to-speech; on failure paths
// it is the only channel the caller hears.

type AuthenticateMemberResult struct {
	Authenticated bool   `json:"authenticated"`
	MemberID      string `json:"member_id,omitempty"`
	FirstName     string `json:"first_name,omitempty"`
	Message       string `json:"message"`
}

type AccountBalance struct {
	AccountType string  `json:"account_type"`
	Suffix      string  `json:"suffix"`
	Balance     float64 `json:"balance"`
	Available   float64 `json:"available"`
}

type AccountBalancesResult struct {
	Accounts []AccountBalance `json:"accounts"`
	Summary  string           `json:"summary"`
	Message  string           `json:"message"`
}

type Transaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type AccountTransactionsResult struct {
	Transactions []Transaction `json:"transactions"`
	Count        int           `json:"count"`
	Summary      string        `json:"summary"`
	Message      string        `json:"message"`
}

type TransferFundsResult struct {
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
	Amount             float64 `json:"amount,omitempty"`
	From               string  `json:"from,omitempty"`
	To                 string  `json:"to,omitempty"`
	Message            string  `json:"message"`
}

type ReportLostCardResult struct {
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	Message            string `json:"message"`
}

type RoutingInfoResult struct {
	RoutingNumber string `json:"routing_number,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	Message       string `json:"message"`
}

type TravelNotificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CheckStatusResult struct {
	Status  string `json:"status,omitempty"` // cleared, pending, stopped, unknown
	Message string `json:"message"`
}

type StopPaymentResult struct {
	ConfirmationNumber string `json:"confirmation_number,omitempty"`
	Message            string `json:"message"`
}

type Location struct {
	Name    string `json:"name"`
	Type    string `json:"type"` // "atm" or "branch"
	Address string `json:"address"`
	ZipCode string `json:"zip_code"`
}

type FindATMBranchResult struct {
	Locations []Location `json:"locations"`
	Count     int        `json:"count"`
	Message   string     `json:"message"`
}

type RequestStatementResult struct {
	Message string `json:"message"`
}

type UpdateCreditLimitResult struct {
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

type BiometricEnrollmentResult struct {
	Enrolled bool   `json:"enrolled"`
	Message  string `json:"message"`
}
