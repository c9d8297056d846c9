package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/connexcu/voice-backend/internal/client/poweron"
	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/pkg/helpers"
)

// --- stubs ---

type stubSessionStore struct {
	session   *models.CallSession
	getErr    error
	markCalls int
	marked    map[string]string // ucid -> memberId
	markErr   error
}

func (s *stubSessionStore) Get(_ context.Context, ucid string) (*models.CallSession, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.session == nil || s.session.UCID != ucid {
		return nil, errs.NewNotFoundError("call session not found")
	}
	return s.session, nil
}

func (s *stubSessionStore) MarkVerified(_ context.Context, ucid, memberID string) error {
	s.markCalls++
	if s.markErr != nil {
		return s.markErr
	}
	if s.marked == nil {
		s.marked = map[string]string{}
	}
	s.marked[ucid] = memberID
	return nil
}

type stubRequestStore struct {
	travel     []*models.TravelNotice
	statements []*models.StatementRequest
	credits    []*models.CreditLimitRequest
	biometrics map[string]*models.BiometricSetting
	err        error
}

func (s *stubRequestStore) CreateTravelNotice(_ context.Context, notice *models.TravelNotice) error {
	if s.err != nil {
		return s.err
	}
	notice.Status = "active"
	s.travel = append(s.travel, notice)
	return nil
}

func (s *stubRequestStore) CreateStatementRequest(_ context.Context, req *models.StatementRequest) error {
	if s.err != nil {
		return s.err
	}
	s.statements = append(s.statements, req)
	return nil
}

func (s *stubRequestStore) CreateCreditLimitRequest(_ context.Context, req *models.CreditLimitRequest) error {
	if s.err != nil {
		return s.err
	}
	s.credits = append(s.credits, req)
	return nil
}

func (s *stubRequestStore) UpsertBiometricSetting(_ context.Context, setting *models.BiometricSetting) error {
	if s.err != nil {
		return s.err
	}
	if s.biometrics == nil {
		s.biometrics = map[string]*models.BiometricSetting{}
	}
	s.biometrics[setting.MemberID] = setting
	return nil
}

type stubAuditStore struct {
	events []models.AuditEvent
	err    error
}

func (s *stubAuditStore) Record(_ context.Context, event models.AuditEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

type stubCredentialResolver struct {
	cfg    dto.PowerOnConfig
	tenant models.Tenant
	calls  int
}

func (s *stubCredentialResolver) Resolve(_ context.Context, _, _ string) (dto.PowerOnConfig, models.Tenant) {
	s.calls++
	return s.cfg, s.tenant
}

type stubCoreSession struct {
	connectCalls    int
	disconnectCalls int
	connectErr      error

	authResult dto.CoreResult[dto.CoreAuthData]
	authErr    error

	accountsResult dto.CoreResult[dto.CoreAccountsData]
	accountsErr    error

	txResult dto.CoreResult[dto.CoreTransactionsData]
	txErr    error

	transferResult dto.CoreResult[dto.CoreTransferData]
	transferErr    error

	checkResult dto.CoreResult[dto.CoreCheckStatusData]
	checkErr    error

	stopResult dto.CoreResult[dto.CoreStopPaymentData]
	stopErr    error
}

func (s *stubCoreSession) Connect(_ context.Context) error {
	s.connectCalls++
	return s.connectErr
}

func (s *stubCoreSession) Disconnect(_ context.Context) error {
	s.disconnectCalls++
	return nil
}

func (s *stubCoreSession) AuthenticateMember(_ context.Context, _, _, _, _ string) (dto.CoreResult[dto.CoreAuthData], error) {
	return s.authResult, s.authErr
}

func (s *stubCoreSession) GetAccounts(_ context.Context, _ string) (dto.CoreResult[dto.CoreAccountsData], error) {
	return s.accountsResult, s.accountsErr
}

func (s *stubCoreSession) GetTransactions(_ context.Context, _ string, _ dto.CoreTransactionFilter) (dto.CoreResult[dto.CoreTransactionsData], error) {
	return s.txResult, s.txErr
}

func (s *stubCoreSession) TransferFunds(_ context.Context, _, _, _ string, _ float64) (dto.CoreResult[dto.CoreTransferData], error) {
	return s.transferResult, s.transferErr
}

func (s *stubCoreSession) GetCheckStatus(_ context.Context, _, _, _ string) (dto.CoreResult[dto.CoreCheckStatusData], error) {
	return s.checkResult, s.checkErr
}

func (s *stubCoreSession) PlaceStopPayment(_ context.Context, _, _, _ string, _ float64) (dto.CoreResult[dto.CoreStopPaymentData], error) {
	return s.stopResult, s.stopErr
}

type stubCoreFactory struct {
	session *stubCoreSession
}

func (f *stubCoreFactory) NewSession(_ dto.PowerOnConfig) poweron.Session {
	return f.session
}

func happyCoreSession() *stubCoreSession {
	return &stubCoreSession{
		authResult: dto.CoreResult[dto.CoreAuthData]{
			Success: true,
			Data:    &dto.CoreAuthData{MemberID: "M123", FirstName: "Jane"},
		},
		accountsResult: dto.CoreResult[dto.CoreAccountsData]{
			Success: true,
			Data: &dto.CoreAccountsData{Accounts: []dto.CoreAccount{
				{AccountType: "checking", Suffix: "0001", Balance: 100.00, Available: 100.00},
				{AccountType: "savings", Suffix: "0002", Balance: 250.50, Available: 250.50},
			}},
		},
		txResult: dto.CoreResult[dto.CoreTransactionsData]{
			Success: true,
			Data: &dto.CoreTransactionsData{Transactions: []dto.CoreTransaction{
				{Date: "2026-08-28", Description: "Grocery Mart", Amount: -54.18, Type: "debit"},
			}},
		},
		transferResult: dto.CoreResult[dto.CoreTransferData]{
			Success: true,
			Data:    &dto.CoreTransferData{ConfirmationNumber: "CONF-42"},
		},
		checkResult: dto.CoreResult[dto.CoreCheckStatusData]{
			Success: true,
			Data:    &dto.CoreCheckStatusData{Status: "cleared"},
		},
		stopResult: dto.CoreResult[dto.CoreStopPaymentData]{
			Success: true,
			Data:    &dto.CoreStopPaymentData{ConfirmationNumber: "SP-1042"},
		},
	}
}

type toolFixture struct {
	svc         *toolService
	sessions    *stubSessionStore
	requests    *stubRequestStore
	audit       *stubAuditStore
	credentials *stubCredentialResolver
	core        *stubCoreSession
}

func newToolFixture() *toolFixture {
	sessions := &stubSessionStore{
		session: &models.CallSession{
			UCID:     "ucid-1",
			ANI:      "+15551234567",
			MemberID: "M123",
			Verified: true,
			TenantID: "cu_42",
		},
	}
	requests := &stubRequestStore{}
	audit := &stubAuditStore{}
	credentials := &stubCredentialResolver{
		cfg: dto.PowerOnConfig{Mode: dto.PowerOnMock},
		tenant: models.Tenant{
			TenantID:      "cu_42",
			Name:          "Lakeside Credit Union",
			RoutingNumber: "123456789",
			SupportPhone:  "800-555-0100",
		},
	}
	core := happyCoreSession()

	svc := NewToolService(sessions, requests, audit, credentials, &stubCoreFactory{session: core}, 15*time.Second)
	svc.clockNow = func() time.Time { return time.UnixMilli(1234567890123) }

	return &toolFixture{
		svc:         svc,
		sessions:    sessions,
		requests:    requests,
		audit:       audit,
		credentials: credentials,
		core:        core,
	}
}

func invoke(t *testing.T, fx *toolFixture, tool string, params map[string]any) any {
	t.Helper()
	result, err := fx.svc.Execute(helpers.TestCtx(), dto.ToolInvocation{
		ToolName:   tool,
		Parameters: params,
		SessionID:  "ucid-1",
		CallSID:    "CA-99",
		TenantID:   "cu_42",
	})
	if err != nil {
		t.Fatalf("Execute(%s) returned error: %v", tool, err)
	}
	return result
}

func resultMessage(t *testing.T, result any) string {
	t.Helper()
	raw, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	msg, _ := m["message"].(string)
	return msg
}

func minimalParams(tool string) map[string]any {
	switch tool {
	case "authenticate_member":
		return map[string]any{"pin": "1234"}
	case "get_account_balances":
		return map[string]any{"member_id": "M123"}
	case "get_account_transactions":
		return map[string]any{"member_id": "M123"}
	case "transfer_funds":
		return map[string]any{"member_id": "M123", "from_account": "checking", "to_account": "savings", "amount": 50.0}
	case "report_lost_card":
		return map[string]any{"member_id": "M123", "card_type": "debit card", "last_four": "4321", "reason": "lost"}
	case "get_routing_info":
		return map[string]any{"member_id": "M123", "account_type": "checking", "account_suffix": "0001"}
	case "set_travel_notification":
		return map[string]any{"member_id": "M123", "destination": "Mexico", "start_date": "2026-09-01", "end_date": "2026-09-10"}
	case "check_status_inquiry":
		return map[string]any{"member_id": "M123", "check_number": "1042"}
	case "stop_payment":
		return map[string]any{"member_id": "M123", "check_number": "1042", "account_suffix": "0001"}
	case "find_atm_branch":
		return map[string]any{"zip_code": "75201"}
	case "request_statement":
		return map[string]any{"member_id": "M123", "account_type": "checking", "account_suffix": "0001", "delivery_method": "email"}
	case "update_credit_limit":
		return map[string]any{"member_id": "M123", "card_last_four": "4321", "requested_limit": 5000.0}
	case "voice_biometric_enrollment":
		return map[string]any{"member_id": "M123", "opt_in": true}
	default:
		return nil
	}
}

// --- tests ---

func TestDispatcherCompleteness(t *testing.T) {
	for _, tool := range ToolNames {
		t.Run(tool, func(t *testing.T) {
			fx := newToolFixture()
			result := invoke(t, fx, tool, minimalParams(tool))
			if result == nil {
				t.Fatalf("nil result for %s", tool)
			}
			if msg := resultMessage(t, result); msg == "" {
				t.Fatalf("empty message for %s", tool)
			}
		})
	}
}

func TestUnknownToolRejected(t *testing.T) {
	fx := newToolFixture()

	_, err := fx.svc.Execute(helpers.TestCtx(), dto.ToolInvocation{
		ToolName: "not_a_real_tool",
	})
	if err == nil {
		t.Fatalf("expected error for unknown tool")
	}

	var unknown *errs.UnknownToolError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownToolError, got %T", err)
	}
	if unknown.Tool != "not_a_real_tool" {
		t.Fatalf("unexpected tool in error: %s", unknown.Tool)
	}
	if !strings.Contains(unknown.Message, "not_a_real_tool") {
		t.Fatalf("error message should name the tool: %q", unknown.Message)
	}
}

func TestSessionReleasedOncePerInvocation(t *testing.T) {
	coreTools := []string{
		"authenticate_member",
		"get_account_balances",
		"get_account_transactions",
		"transfer_funds",
		"check_status_inquiry",
		"stop_payment",
	}

	scenarios := map[string]func(core *stubCoreSession){
		"success": func(core *stubCoreSession) {},
		"domain failure": func(core *stubCoreSession) {
			core.authResult = dto.CoreResult[dto.CoreAuthData]{Success: false, Error: "denied"}
			core.accountsResult = dto.CoreResult[dto.CoreAccountsData]{Success: false, Error: "down"}
			core.txResult = dto.CoreResult[dto.CoreTransactionsData]{Success: false, Error: "down"}
			core.transferResult = dto.CoreResult[dto.CoreTransferData]{Success: false, Error: "nsf"}
			core.checkResult = dto.CoreResult[dto.CoreCheckStatusData]{Success: false, Error: "down"}
			core.stopResult = dto.CoreResult[dto.CoreStopPaymentData]{Success: false, Error: "down"}
		},
		"transport error": func(core *stubCoreSession) {
			transportErr := errors.New("connection reset")
			core.authErr = transportErr
			core.accountsErr = transportErr
			core.txErr = transportErr
			core.transferErr = transportErr
			core.checkErr = transportErr
			core.stopErr = transportErr
		},
	}

	for name, arrange := range scenarios {
		for _, tool := range coreTools {
			t.Run(name+"/"+tool, func(t *testing.T) {
				fx := newToolFixture()
				arrange(fx.core)

				result := invoke(t, fx, tool, minimalParams(tool))
				if msg := resultMessage(t, result); msg == "" {
					t.Fatalf("message must be speakable even on %s", name)
				}

				if fx.core.connectCalls != 1 {
					t.Fatalf("connect called %d times, want 1", fx.core.connectCalls)
				}
				if fx.core.disconnectCalls != 1 {
					t.Fatalf("disconnect called %d times, want 1", fx.core.disconnectCalls)
				}
			})
		}
	}
}

func TestAuthenticateWithoutANISkipsCore(t *testing.T) {
	fx := newToolFixture()
	fx.sessions.session.ANI = ""

	result := invoke(t, fx, "authenticate_member", map[string]any{"pin": "1234"})

	auth, ok := result.(dto.AuthenticateMemberResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if auth.Authenticated {
		t.Fatalf("expected authenticated=false without ANI")
	}
	if auth.Message == "" {
		t.Fatalf("missing failure message")
	}
	if fx.core.connectCalls != 0 {
		t.Fatalf("core connect should not be attempted without ANI, got %d calls", fx.core.connectCalls)
	}
}

func TestTransferConfirmationSynthesis(t *testing.T) {
	fx := newToolFixture()
	fx.core.transferResult = dto.CoreResult[dto.CoreTransferData]{
		Success: true,
		Data:    &dto.CoreTransferData{},
	}

	result := invoke(t, fx, "transfer_funds", minimalParams("transfer_funds"))
	transfer := result.(dto.TransferFundsResult)

	// clockNow is pinned to UnixMilli 1234567890123; last 8 digits = 67890123.
	want := "TXF67890123"
	if transfer.ConfirmationNumber != want {
		t.Fatalf("synthesized confirmation = %q, want %q", transfer.ConfirmationNumber, want)
	}
	if !strings.Contains(transfer.Message, want) {
		t.Fatalf("message should speak the confirmation number: %q", transfer.Message)
	}
}

func TestLostCardConfirmationSynthesis(t *testing.T) {
	fx := newToolFixture()

	result := invoke(t, fx, "report_lost_card", minimalParams("report_lost_card"))
	report := result.(dto.ReportLostCardResult)

	want := "CARD67890123"
	if report.ConfirmationNumber != want {
		t.Fatalf("synthesized confirmation = %q, want %q", report.ConfirmationNumber, want)
	}
	if len(fx.audit.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(fx.audit.events))
	}
	if fx.audit.events[0].Event != "lost_card_report" {
		t.Fatalf("unexpected audit event: %s", fx.audit.events[0].Event)
	}
	if fx.audit.events[0].TenantID != "cu_42" {
		t.Fatalf("audit event should carry the tenant id, got %q", fx.audit.events[0].TenantID)
	}
	if fx.core.connectCalls != 0 {
		t.Fatalf("report_lost_card must not open a core session")
	}
}

func TestTransactionSummaryTruncation(t *testing.T) {
	fx := newToolFixture()

	txs := make([]dto.CoreTransaction, 0, 8)
	for i := 1; i <= 8; i++ {
		txs = append(txs, dto.CoreTransaction{
			Date:        fmt.Sprintf("2026-08-%02d", i),
			Description: fmt.Sprintf("Merchant %d", i),
			Amount:      -float64(i),
			Type:        "debit",
		})
	}
	fx.core.txResult = dto.CoreResult[dto.CoreTransactionsData]{
		Success: true,
		Data:    &dto.CoreTransactionsData{Transactions: txs},
	}

	result := invoke(t, fx, "get_account_transactions", minimalParams("get_account_transactions"))
	got := result.(dto.AccountTransactionsResult)

	if got.Count != 8 || len(got.Transactions) != 8 {
		t.Fatalf("count=%d len=%d, want 8/8", got.Count, len(got.Transactions))
	}
	for i := 1; i <= 5; i++ {
		if !strings.Contains(got.Summary, fmt.Sprintf("Merchant %d", i)) {
			t.Fatalf("summary missing Merchant %d: %q", i, got.Summary)
		}
	}
	if strings.Contains(got.Summary, "Merchant 6") {
		t.Fatalf("summary should stop after five transactions: %q", got.Summary)
	}
}

func TestAuthenticateWriteBackIdempotent(t *testing.T) {
	fx := newToolFixture()

	invoke(t, fx, "authenticate_member", map[string]any{"pin": "1234"})
	fx.core.authResult.Data.MemberID = "M456"
	invoke(t, fx, "authenticate_member", map[string]any{"pin": "1234"})

	if fx.sessions.markCalls != 2 {
		t.Fatalf("MarkVerified called %d times, want 2", fx.sessions.markCalls)
	}
	if len(fx.sessions.marked) != 1 {
		t.Fatalf("expected a single session document, got %d", len(fx.sessions.marked))
	}
	if fx.sessions.marked["ucid-1"] != "M456" {
		t.Fatalf("latest member id should win, got %s", fx.sessions.marked["ucid-1"])
	}
}

func TestTenantConfigDegradation(t *testing.T) {
	fx := newToolFixture()
	// Resolver already swallowed the credential failure and handed back
	// empty values; handlers must still work with generic wording.
	fx.credentials.cfg = dto.PowerOnConfig{}
	fx.credentials.tenant = models.Tenant{}

	result := invoke(t, fx, "set_travel_notification", minimalParams("set_travel_notification"))
	travel := result.(dto.TravelNotificationResult)
	if !travel.Success {
		t.Fatalf("travel notification should succeed without tenant config: %q", travel.Message)
	}
	if len(fx.requests.travel) != 1 || fx.requests.travel[0].Status != "active" {
		t.Fatalf("travel notice not persisted as active")
	}

	routing := invoke(t, fx, "get_routing_info", minimalParams("get_routing_info")).(dto.RoutingInfoResult)
	if routing.RoutingNumber != "" {
		t.Fatalf("no routing number should be returned without tenant config")
	}
	if !strings.Contains(routing.Message, "member services") {
		t.Fatalf("expected generic fallback wording, got %q", routing.Message)
	}
}

func TestRoutingNumberSpokenDigitByDigit(t *testing.T) {
	fx := newToolFixture()

	result := invoke(t, fx, "get_routing_info", minimalParams("get_routing_info"))
	routing := result.(dto.RoutingInfoResult)

	if routing.RoutingNumber != "123456789" {
		t.Fatalf("unexpected routing number %q", routing.RoutingNumber)
	}
	if !strings.Contains(routing.Message, "1 2 3 4 5 6 7 8 9") {
		t.Fatalf("routing digits should be spaced for speech: %q", routing.Message)
	}
	if !strings.Contains(routing.Message, "Lakeside Credit Union") {
		t.Fatalf("message should use the tenant's name: %q", routing.Message)
	}
}

func TestRoutingInfoWithoutAccountNumber(t *testing.T) {
	fx := newToolFixture()
	fx.sessions.session.MemberID = ""

	result := invoke(t, fx, "get_routing_info", map[string]any{"account_type": "checking"})
	routing := result.(dto.RoutingInfoResult)

	if routing.AccountNumber != "" {
		t.Fatalf("no account number should be returned without a member id, got %q", routing.AccountNumber)
	}
	if strings.Contains(routing.Message, "ending in") {
		t.Fatalf("message must not speak an empty account mask: %q", routing.Message)
	}
	if !strings.Contains(routing.Message, "1 2 3 4 5 6 7 8 9") {
		t.Fatalf("routing digits should still be spoken: %q", routing.Message)
	}
}

func TestAccountBalancesEndToEnd(t *testing.T) {
	fx := newToolFixture()

	result := invoke(t, fx, "get_account_balances", map[string]any{"member_id": "M123"})
	got := result.(dto.AccountBalancesResult)

	if len(got.Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(got.Accounts))
	}
	if !strings.Contains(got.Message, "$100.00") || !strings.Contains(got.Message, "$250.50") {
		t.Fatalf("message missing formatted balances: %q", got.Message)
	}
	if !strings.HasSuffix(got.Message, "Would you like to hear details about any specific account?") {
		t.Fatalf("message should end with the details prompt: %q", got.Message)
	}
}

func TestCheckStatusWording(t *testing.T) {
	cases := map[string]string{
		"cleared": "has cleared",
		"pending": "has not cleared",
		"stopped": "stop payment has been placed",
		"gibber":  "couldn't find a record",
	}

	for status, want := range cases {
		t.Run(status, func(t *testing.T) {
			fx := newToolFixture()
			fx.core.checkResult = dto.CoreResult[dto.CoreCheckStatusData]{
				Success: true,
				Data:    &dto.CoreCheckStatusData{Status: status},
			}

			result := invoke(t, fx, "check_status_inquiry", minimalParams("check_status_inquiry")).(dto.CheckStatusResult)
			if !strings.Contains(result.Message, want) {
				t.Fatalf("status %s: message %q should contain %q", status, result.Message, want)
			}
		})
	}
}

func TestFindATMBranchSpeaksAtMostThree(t *testing.T) {
	fx := newToolFixture()

	result := invoke(t, fx, "find_atm_branch", map[string]any{"zip_code": "00000", "location_type": "both"})
	got := result.(dto.FindATMBranchResult)

	if got.Count < 4 {
		t.Fatalf("fixture directory should return more than three locations, got %d", got.Count)
	}
	spokenNames := 0
	for _, loc := range got.Locations {
		if strings.Contains(got.Message, loc.Name) {
			spokenNames++
		}
	}
	if spokenNames != 3 {
		t.Fatalf("message should name exactly three locations, named %d: %q", spokenNames, got.Message)
	}
}

func TestStatementDeliveryWording(t *testing.T) {
	fx := newToolFixture()

	email := invoke(t, fx, "request_statement", minimalParams("request_statement")).(dto.RequestStatementResult)
	if !strings.Contains(email.Message, "emailed") {
		t.Fatalf("email delivery wording missing: %q", email.Message)
	}

	params := minimalParams("request_statement")
	params["delivery_method"] = "mail"
	postal := invoke(t, fx, "request_statement", params).(dto.RequestStatementResult)
	if !strings.Contains(postal.Message, "mailed to your address") {
		t.Fatalf("postal delivery wording missing: %q", postal.Message)
	}

	if len(fx.requests.statements) != 2 {
		t.Fatalf("expected 2 statement requests persisted, got %d", len(fx.requests.statements))
	}
	if fx.requests.statements[0].TenantID != "cu_42" {
		t.Fatalf("statement request should carry the tenant id, got %q", fx.requests.statements[0].TenantID)
	}
}

func TestBiometricEnrollmentUpsert(t *testing.T) {
	fx := newToolFixture()

	enroll := invoke(t, fx, "voice_biometric_enrollment", map[string]any{"member_id": "M123", "opt_in": true}).(dto.BiometricEnrollmentResult)
	if !enroll.Enrolled {
		t.Fatalf("expected enrolled=true")
	}

	unenroll := invoke(t, fx, "voice_biometric_enrollment", map[string]any{"member_id": "M123", "opt_in": false}).(dto.BiometricEnrollmentResult)
	if unenroll.Enrolled {
		t.Fatalf("expected enrolled=false after opt-out")
	}

	if len(fx.requests.biometrics) != 1 {
		t.Fatalf("upsert should keep one document per member, got %d", len(fx.requests.biometrics))
	}
	if fx.requests.biometrics["M123"].OptIn {
		t.Fatalf("latest opt-out should win")
	}
}

func TestCreditLimitRequestPersisted(t *testing.T) {
	fx := newToolFixture()

	result := invoke(t, fx, "update_credit_limit", minimalParams("update_credit_limit")).(dto.UpdateCreditLimitResult)

	want := "CLR67890123"
	if result.RequestID != want {
		t.Fatalf("request id = %q, want %q", result.RequestID, want)
	}
	if len(fx.requests.credits) != 1 || fx.requests.credits[0].ID != want {
		t.Fatalf("credit limit request not persisted with synthesized id")
	}
}
