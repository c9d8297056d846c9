package services

import (
	"context"
	"encoding/json"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/pkg/logger"
)

type tenantTNStore interface {
	GetByKey(ctx context.Context, tenantID, cuID string) (*models.Tenant, error)
	Update(ctx context.Context, tenantID string, tenant *models.Tenant) error
}

type credentialTNSecrets interface {
	StoreCredentials(ctx context.Context, tenantKey, payload string) error
	DeleteCredentials(ctx context.Context, tenantKey string) error
}

type auditTNStore interface {
	ListByMember(ctx context.Context, memberID string, limit int) ([]models.AuditEvent, error)
}

type kmsEncrypter interface {
	KmsEncrypt(ctx context.Context, plaintext string) (string, error)
}

// tenantService is the narrow backend surface the admin console consumes:
// branding CRUD, core-banking credential rotation, and the member audit trail.
type tenantService struct {
	tenants tenantTNStore
	secrets credentialTNSecrets
	audit   auditTNStore
	kms     kmsEncrypter
}

func NewTenantService(tenants tenantTNStore, secrets credentialTNSecrets, audit auditTNStore, kms kmsEncrypter) *tenantService {
	return &tenantService{
		tenants: tenants,
		secrets: secrets,
		audit:   audit,
		kms:     kms,
	}
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	return s.tenants.GetByKey(ctx, tenantID, "")
}

func (s *tenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.tenants.GetByKey(ctx, tenantID, "")
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.CharterNumber != "" {
		tenant.CharterNumber = req.CharterNumber
	}
	if req.RoutingNumber != "" {
		tenant.RoutingNumber = req.RoutingNumber
	}
	if req.SupportPhone != "" {
		tenant.SupportPhone = req.SupportPhone
	}

	if err := s.tenants.Update(ctx, tenantID, tenant); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("tenant updated", "tenant_id", tenantID)
	return tenant, nil
}

// UpdateCoreCredentials rotates the tenant's core-banking connection blob.
// The password is KMS-encrypted before it reaches Secret Manager so it is
// never stored in plaintext.
func (s *tenantService) UpdateCoreCredentials(ctx context.Context, tenantID string, req dto.UpdateCoreCredentialsRequest) error {
	if req.Host == "" && req.Mode != "mock" {
		return errs.NewValidationError("host is required")
	}

	ciphertext := ""
	if req.Password != "" {
		var err error
		ciphertext, err = s.kms.KmsEncrypt(ctx, req.Password)
		if err != nil {
			return errs.NewEncryptionError("failed to encrypt core credential", err)
		}
	}

	blob, err := json.Marshal(storedCredentials{
		Mode:               req.Mode,
		Host:               req.Host,
		Port:               req.Port,
		DeviceType:         req.DeviceType,
		UserNumber:         req.UserNumber,
		PasswordCiphertext: ciphertext,
	})
	if err != nil {
		return err
	}

	if err := s.secrets.StoreCredentials(ctx, tenantID, string(blob)); err != nil {
		return errs.NewExternalServiceError("secretmanager", "failed to store core credentials", false, err)
	}

	log := logger.FromContext(ctx)
	log.Info("core credentials rotated", "tenant_id", tenantID, "mode", req.Mode)
	return nil
}

// DeleteCoreCredentials removes the tenant's core-banking connection blob.
// Voice calls for the tenant degrade to the mock core until new credentials
// are stored.
func (s *tenantService) DeleteCoreCredentials(ctx context.Context, tenantID string) error {
	if err := s.secrets.DeleteCredentials(ctx, tenantID); err != nil {
		return errs.NewExternalServiceError("secretmanager", "failed to delete core credentials", false, err)
	}

	log := logger.FromContext(ctx)
	log.Info("core credentials deleted", "tenant_id", tenantID)
	return nil
}

const defaultAuditLimit = 50

// ListAuditEvents returns the most recent sensitive-operation records for a
// member, newest first.
func (s *tenantService) ListAuditEvents(ctx context.Context, memberID string, limit int) ([]models.AuditEvent, error) {
	if memberID == "" {
		return nil, errs.NewValidationError("memberId is required")
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return s.audit.ListByMember(ctx, memberID, limit)
}
