package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
)

// requestStore persists back-office request records captured by the voice
// layer. Fulfillment is asynchronous; this layer only writes durably.
type requestStore struct {
	client *firestore.Client
}

func NewRequestStore(client *firestore.Client) *requestStore {
	return &requestStore{client: client}
}

func (s *requestStore) CreateTravelNotice(ctx context.Context, notice *models.TravelNotice) error {
	if notice.ID == "" {
		notice.ID = uuid.NewString()
	}
	notice.Status = "active"
	notice.CreatedAt = time.Now()

	_, err := s.client.Collection("travel_notices").Doc(notice.ID).Create(ctx, notice)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save travel notice", err)
	}
	return nil
}

func (s *requestStore) CreateStatementRequest(ctx context.Context, req *models.StatementRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = "pending"
	req.CreatedAt = time.Now()

	_, err := s.client.Collection("statement_requests").Doc(req.ID).Create(ctx, req)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save statement request", err)
	}
	return nil
}

func (s *requestStore) CreateCreditLimitRequest(ctx context.Context, req *models.CreditLimitRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.Status = "pending"
	req.CreatedAt = time.Now()

	_, err := s.client.Collection("credit_limit_requests").Doc(req.ID).Create(ctx, req)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save credit limit request", err)
	}
	return nil
}

// UpsertBiometricSetting is keyed by member id so repeated enrollments update
// the same document instead of accumulating rows.
func (s *requestStore) UpsertBiometricSetting(ctx context.Context, setting *models.BiometricSetting) error {
	setting.UpdatedAt = time.Now()

	_, err := s.client.Collection("biometric_settings").Doc(setting.MemberID).Set(ctx, setting)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to save biometric setting", err)
	}
	return nil
}
