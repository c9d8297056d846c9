package services

import (
	"context"
	"encoding/json"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/pkg/logger"
)

type credentialSecrets interface {
	GetCredentials(ctx context.Context, tenantKey string) (string, error)
}

type tenantCSStore interface {
	GetByKey(ctx context.Context, tenantID, cuID string) (*models.Tenant, error)
}

type kmsDecrypter interface {
	KmsDecrypt(ctx context.Context, ciphertext string) (string, error)
}

type credentialService struct {
	secrets credentialSecrets
	tenants tenantCSStore
	kms     kmsDecrypter
}

func NewCredentialService(secrets credentialSecrets, tenants tenantCSStore, kms kmsDecrypter) *credentialService {
	return &credentialService{
		secrets: secrets,
		tenants: tenants,
		kms:     kms,
	}
}

// storedCredentials is the Secret Manager blob layout. The password is held
// as base64 KMS ciphertext, never plaintext at rest.
type storedCredentials struct {
	Mode               string `json:"mode"`
	Host               string `json:"host"`
	Port               string `json:"port"`
	DeviceType         string `json:"deviceType"`
	UserNumber         string `json:"userNumber"`
	PasswordCiphertext string `json:"passwordCiphertext"`
}

// Resolve loads core-banking connection parameters and branding for the
// tenant. Every failure degrades to empty values with a warning: a
// misconfigured tenant still gets a generically worded response rather than a
// hard failure.
func (s *credentialService) Resolve(ctx context.Context, tenantID, cuID string) (dto.PowerOnConfig, models.Tenant) {
	log := logger.FromContext(ctx)

	tenantKey := tenantID
	if tenantKey == "" {
		tenantKey = cuID
	}

	cfg := s.resolveConnection(ctx, tenantKey)

	var branding models.Tenant
	tenant, err := s.tenants.GetByKey(ctx, tenantID, cuID)
	if err != nil {
		log.Warn("tenant branding lookup failed", "tenant_key", tenantKey, "error", err)
	} else {
		branding = *tenant
	}

	return cfg, branding
}

func (s *credentialService) resolveConnection(ctx context.Context, tenantKey string) dto.PowerOnConfig {
	log := logger.FromContext(ctx)

	blob, err := s.secrets.GetCredentials(ctx, tenantKey)
	if err != nil {
		log.Warn("core credentials lookup failed", "tenant_key", tenantKey, "error", err)
		return dto.PowerOnConfig{}
	}

	var creds storedCredentials
	if err := json.Unmarshal([]byte(blob), &creds); err != nil {
		log.Warn("core credentials blob is malformed", "tenant_key", tenantKey, "error", err)
		return dto.PowerOnConfig{}
	}

	password := ""
	if creds.PasswordCiphertext != "" {
		password, err = s.kms.KmsDecrypt(ctx, creds.PasswordCiphertext)
		if err != nil {
			log.Warn("core credential decrypt failed", "tenant_key", tenantKey, "error", err)
			return dto.PowerOnConfig{}
		}
	}

	return dto.PowerOnConfig{
		Mode:       parseMode(creds.Mode),
		Host:       creds.Host,
		Port:       creds.Port,
		DeviceType: creds.DeviceType,
		UserNumber: creds.UserNumber,
		Password:   password,
	}
}

func parseMode(mode string) dto.PowerOnMode {
	switch mode {
	case "symxchange":
		return dto.PowerOnSymXchange
	case "direct":
		return dto.PowerOnDirect
	default:
		return dto.PowerOnMock
	}
}
