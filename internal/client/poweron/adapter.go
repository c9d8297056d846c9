// Package poweron is the adapter for the core-banking system. A Session maps
// to one PowerOn connection: opened for a single tool call and released before
// the response is returned. Sessions must never be cached or shared across
// requests.
package poweron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/connexcu/voice-backend/internal/dto"
)

type Session interface {
	Connect(ctx context.Context) error
	AuthenticateMember(ctx context.Context, ani, pin, ssnLast4, birthDate string) (dto.CoreResult[dto.CoreAuthData], error)
	GetAccounts(ctx context.Context, memberID string) (dto.CoreResult[dto.CoreAccountsData], error)
	GetTransactions(ctx context.Context, memberID string, filter dto.CoreTransactionFilter) (dto.CoreResult[dto.CoreTransactionsData], error)
	TransferFunds(ctx context.Context, memberID, fromAccount, toAccount string, amount float64) (dto.CoreResult[dto.CoreTransferData], error)
	GetCheckStatus(ctx context.Context, memberID, checkNumber, accountSuffix string) (dto.CoreResult[dto.CoreCheckStatusData], error)
	PlaceStopPayment(ctx context.Context, memberID, checkNumber, accountSuffix string, amount float64) (dto.CoreResult[dto.CoreStopPaymentData], error)
	Disconnect(ctx context.Context) error
}

type Adapter struct {
	httpClient *http.Client
}

func NewAdapter() *Adapter {
	return &Adapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewSession builds a fresh, unconnected session for one tool call. A zero or
// mock config yields the mock core so a misconfigured tenant still gets a
// speakable response path.
func (a *Adapter) NewSession(cfg dto.PowerOnConfig) Session {
	if cfg.IsZero() || cfg.Mode == dto.PowerOnMock {
		return newMockSession()
	}
	return &httpSession{
		cfg:        cfg,
		httpClient: a.httpClient,
	}
}

// httpSession talks to the SymXchange gateway (or the direct PowerOn bridge,
// which exposes the same JSON surface on a different path).
type httpSession struct {
	cfg        dto.PowerOnConfig
	httpClient *http.Client
	token      string
}

func (s *httpSession) baseURL() string {
	prefix := "symxchange"
	if s.cfg.Mode == dto.PowerOnDirect {
		prefix = "poweron"
	}
	return fmt.Sprintf("https://%s:%s/%s", s.cfg.Host, s.cfg.Port, prefix)
}

type connectResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error,omitempty"`
}

func (s *httpSession) Connect(ctx context.Context) error {
	var resp connectResponse
	err := s.post(ctx, "/session/connect", map[string]any{
		"deviceType": s.cfg.DeviceType,
		"userNumber": s.cfg.UserNumber,
		"password":   s.cfg.Password,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("core session connect rejected: %s", resp.Error)
	}
	s.token = resp.Token
	return nil
}

func (s *httpSession) Disconnect(ctx context.Context) error {
	var resp connectResponse
	return s.post(ctx, "/session/disconnect", map[string]any{"token": s.token}, &resp)
}

func (s *httpSession) AuthenticateMember(ctx context.Context, ani, pin, ssnLast4, birthDate string) (dto.CoreResult[dto.CoreAuthData], error) {
	return call[dto.CoreAuthData](ctx, s, "/member/authenticate", map[string]any{
		"ani":         ani,
		"pin":         pin,
		"ssnLastFour": ssnLast4,
		"dateOfBirth": birthDate,
	})
}

func (s *httpSession) GetAccounts(ctx context.Context, memberID string) (dto.CoreResult[dto.CoreAccountsData], error) {
	return call[dto.CoreAccountsData](ctx, s, "/accounts", map[string]any{
		"memberId": memberID,
	})
}

func (s *httpSession) GetTransactions(ctx context.Context, memberID string, filter dto.CoreTransactionFilter) (dto.CoreResult[dto.CoreTransactionsData], error) {
	return call[dto.CoreTransactionsData](ctx, s, "/transactions", map[string]any{
		"memberId":      memberID,
		"accountType":   filter.AccountType,
		"accountSuffix": filter.AccountSuffix,
		"daysBack":      filter.DaysBack,
	})
}

func (s *httpSession) TransferFunds(ctx context.Context, memberID, fromAccount, toAccount string, amount float64) (dto.CoreResult[dto.CoreTransferData], error) {
	return call[dto.CoreTransferData](ctx, s, "/transfer", map[string]any{
		"memberId":    memberID,
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
		"amount":      amount,
	})
}

func (s *httpSession) GetCheckStatus(ctx context.Context, memberID, checkNumber, accountSuffix string) (dto.CoreResult[dto.CoreCheckStatusData], error) {
	return call[dto.CoreCheckStatusData](ctx, s, "/check-status", map[string]any{
		"memberId":      memberID,
		"checkNumber":   checkNumber,
		"accountSuffix": accountSuffix,
	})
}

func (s *httpSession) PlaceStopPayment(ctx context.Context, memberID, checkNumber, accountSuffix string, amount float64) (dto.CoreResult[dto.CoreStopPaymentData], error) {
	return call[dto.CoreStopPaymentData](ctx, s, "/stop-payment", map[string]any{
		"memberId":      memberID,
		"checkNumber":   checkNumber,
		"accountSuffix": accountSuffix,
		"amount":        amount,
	})
}

// call posts one domain operation and decodes the core's uniform envelope.
func call[T any](ctx context.Context, s *httpSession, path string, body map[string]any) (dto.CoreResult[T], error) {
	body["token"] = s.token

	var wire struct {
		Success bool   `json:"success"`
		Data    *T     `json:"data,omitempty"`
		Error   string `json:"error,omitempty"`
	}
	if err := s.post(ctx, path, body, &wire); err != nil {
		return dto.CoreResult[T]{}, err
	}

	return dto.CoreResult[T]{
		Success: wire.Success,
		Data:    wire.Data,
		Error:   wire.Error,
	}, nil
}

func (s *httpSession) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL()+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("core gateway returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
