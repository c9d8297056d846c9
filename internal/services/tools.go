package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/connexcu/voice-backend/internal/client/poweron"
	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/pkg/logger"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

type sessionTSStore interface {
	Get(ctx context.Context, ucid string) (*models.CallSession, error)
	MarkVerified(ctx context.Context, ucid, memberID string) error
}

type requestTSStore interface {
	CreateTravelNotice(ctx context.Context, notice *models.TravelNotice) error
	CreateStatementRequest(ctx context.Context, req *models.StatementRequest) error
	CreateCreditLimitRequest(ctx context.Context, req *models.CreditLimitRequest) error
	UpsertBiometricSetting(ctx context.Context, setting *models.BiometricSetting) error
}

type auditTSStore interface {
	Record(ctx context.Context, event models.AuditEvent) error
}

type credentialResolver interface {
	Resolve(ctx context.Context, tenantID, cuID string) (dto.PowerOnConfig, models.Tenant)
}

// coreFactory builds a fresh core-banking session per tool call.
type coreFactory interface {
	NewSession(cfg dto.PowerOnConfig) poweron.Session
}

type toolService struct {
	sessions    sessionTSStore
	requests    requestTSStore
	audit       auditTSStore
	credentials credentialResolver
	core        coreFactory
	locations   locationDirectory
	coreTimeout time.Duration
	clockNow    func() time.Time
}

func NewToolService(
	sessions sessionTSStore,
	requests requestTSStore,
	audit auditTSStore,
	credentials credentialResolver,
	core coreFactory,
	coreTimeout time.Duration,
) *toolService {
	return &toolService{
		sessions:    sessions,
		requests:    requests,
		audit:       audit,
		credentials: credentials,
		core:        core,
		locations:   staticLocations,
		coreTimeout: coreTimeout,
		clockNow:    time.Now,
	}
}

// callContext is the per-request aggregate the handlers read. Session fields
// supplement, never overwrite, what the invocation carried.
type callContext struct {
	SessionID string
	CallSID   string
	TenantID  string
	CUID      string
	ANI       string
	MemberID  string
	Verified  bool

	PowerOn dto.PowerOnConfig
	Tenant  models.Tenant
}

// Execute runs one tool invocation through the full pipeline: resolve
// context, load tenant credentials, dispatch, handle. The returned result is
// handler-shaped and always carries a non-empty message; the only errors that
// escape are request-level ones (unknown tool, bad argument types).
func (s *toolService) Execute(ctx context.Context, inv dto.ToolInvocation) (any, error) {
	log := logger.FromContext(ctx)

	if !isValidToolName(inv.ToolName) {
		return nil, errs.NewUnknownToolError(inv.ToolName)
	}

	tc := s.resolveContext(ctx, inv)
	tc.PowerOn, tc.Tenant = s.loadTenant(ctx, tc)

	log.Info("dispatching tool",
		"tool", inv.ToolName,
		"session_id", tc.SessionID,
		"tenant_id", tc.TenantID,
		"verified", tc.Verified)

	switch inv.ToolName {
	case "authenticate_member":
		return dispatchCtx(ctx, inv, tc, s.authenticateMember)
	case "get_account_balances":
		return dispatchCtx(ctx, inv, tc, s.getAccountBalances)
	case "get_account_transactions":
		return dispatchCtx(ctx, inv, tc, s.getAccountTransactions)
	case "transfer_funds":
		return dispatchCtx(ctx, inv, tc, s.transferFunds)
	case "report_lost_card":
		return dispatchCtx(ctx, inv, tc, s.reportLostCard)
	case "get_routing_info":
		return dispatch(inv, tc, s.getRoutingInfo)
	case "set_travel_notification":
		return dispatchCtx(ctx, inv, tc, s.setTravelNotification)
	case "check_status_inquiry":
		return dispatchCtx(ctx, inv, tc, s.checkStatusInquiry)
	case "stop_payment":
		return dispatchCtx(ctx, inv, tc, s.stopPayment)
	case "find_atm_branch":
		return dispatch(inv, tc, s.findATMBranch)
	case "request_statement":
		return dispatchCtx(ctx, inv, tc, s.requestStatement)
	case "update_credit_limit":
		return dispatchCtx(ctx, inv, tc, s.updateCreditLimit)
	case "voice_biometric_enrollment":
		return dispatchCtx(ctx, inv, tc, s.voiceBiometricEnrollment)
	default:
		// Unreachable: the name was validated above.
		return nil, errs.NewUnknownToolError(inv.ToolName)
	}
}

// dispatchCtx decodes the untyped parameter bag into the handler's typed args
// and invokes it. The non-ctx variant serves handlers that neither touch the
// core nor persist anything.
func dispatchCtx[A any, R any](ctx context.Context, inv dto.ToolInvocation, tc *callContext, handle func(context.Context, A, *callContext) R) (any, error) {
	args, err := decodeArgs[A](inv.Parameters)
	if err != nil {
		return nil, err
	}
	return handle(ctx, args, tc), nil
}

func dispatch[A any, R any](inv dto.ToolInvocation, tc *callContext, handle func(A, *callContext) R) (any, error) {
	args, err := decodeArgs[A](inv.Parameters)
	if err != nil {
		return nil, err
	}
	return handle(args, tc), nil
}

// resolveContext builds the call context from the invocation, enriched from
// the persisted call session when one exists. A missing or unreadable session
// is not an error; the base context stands alone.
func (s *toolService) resolveContext(ctx context.Context, inv dto.ToolInvocation) *callContext {
	tc := &callContext{
		SessionID: inv.SessionID,
		CallSID:   inv.CallSID,
		TenantID:  inv.TenantID,
		CUID:      inv.CUID,
	}

	if inv.SessionID == "" {
		return tc
	}

	session, err := s.sessions.Get(ctx, inv.SessionID)
	if err != nil {
		var notFound *errs.NotFoundError
		if !errors.As(err, &notFound) {
			logger.FromContext(ctx).Warn("call session lookup failed", "session_id", inv.SessionID, "error", err)
		}
		return tc
	}

	tc.ANI = session.ANI
	tc.MemberID = session.MemberID
	tc.Verified = session.Verified
	if tc.CallSID == "" {
		tc.CallSID = session.CallSID
	}
	if tc.TenantID == "" {
		tc.TenantID = session.TenantID
	}
	return tc
}

// loadTenant resolves core-banking credentials and branding. Skipped entirely
// when no tenant key is present; the resolver itself degrades to empty values
// on failure so a misconfigured tenant still gets a generic response.
func (s *toolService) loadTenant(ctx context.Context, tc *callContext) (dto.PowerOnConfig, models.Tenant) {
	if tc.TenantID == "" && tc.CUID == "" {
		return dto.PowerOnConfig{}, models.Tenant{}
	}
	return s.credentials.Resolve(ctx, tc.TenantID, tc.CUID)
}

// memberID prefers the explicit parameter over the session-derived member.
func memberID(param string, tc *callContext) string {
	if param != "" {
		return param
	}
	return tc.MemberID
}

// confirmationNumber synthesizes an identifier from the last 8 digits of the
// current millisecond timestamp, e.g. TXF83920417.
func (s *toolService) confirmationNumber(prefix string) string {
	return fmt.Sprintf("%s%08d", prefix, s.clockNow().UnixMilli()%100000000)
}

func decodeArgs[T any](params map[string]any) (T, error) {
	var out T
	if len(params) == 0 {
		return out, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return out, errs.NewValidationError("invalid tool parameters")
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errs.NewValidationError("invalid tool parameters")
	}
	return out, nil
}

// ToolNames is the closed set of dispatchable operations.
var ToolNames = []string{
	"authenticate_member",
	"get_account_balances",
	"get_account_transactions",
	"transfer_funds",
	"report_lost_card",
	"get_routing_info",
	"set_travel_notification",
	"check_status_inquiry",
	"stop_payment",
	"find_atm_branch",
	"request_statement",
	"update_credit_limit",
	"voice_biometric_enrollment",
}

var validTools = func() map[string]bool {
	m := make(map[string]bool, len(ToolNames))
	for _, name := range ToolNames {
		m[name] = true
	}
	return m
}()

func isValidToolName(name string) bool {
	return validTools[name]
}
