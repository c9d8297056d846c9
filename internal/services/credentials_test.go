package services

import (
	"context"
	"errors"
	"testing"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/pkg/helpers"
)

type stubCredentialSecrets struct {
	blob string
	err  error
	key  string
}

func (s *stubCredentialSecrets) GetCredentials(_ context.Context, tenantKey string) (string, error) {
	s.key = tenantKey
	return s.blob, s.err
}

type stubTenantLookup struct {
	tenant *models.Tenant
	err    error
}

func (s *stubTenantLookup) GetByKey(_ context.Context, _, _ string) (*models.Tenant, error) {
	return s.tenant, s.err
}

type stubDecrypter struct {
	plaintext string
	err       error
}

func (s *stubDecrypter) KmsDecrypt(_ context.Context, _ string) (string, error) {
	return s.plaintext, s.err
}

const credentialBlob = `{
	"mode": "symxchange",
	"host": "core.lakesidecu.example",
	"port": "8087",
	"deviceType": "VOICE",
	"userNumber": "900",
	"passwordCiphertext": "b2s="
}`

func TestResolveHappyPath(t *testing.T) {
	secrets := &stubCredentialSecrets{blob: credentialBlob}
	tenants := &stubTenantLookup{tenant: &models.Tenant{
		TenantID:      "cu_42",
		Name:          "Lakeside Credit Union",
		RoutingNumber: "123456789",
	}}
	svc := NewCredentialService(secrets, tenants, &stubDecrypter{plaintext: "s3cret"})

	cfg, branding := svc.Resolve(helpers.TestCtx(), "cu_42", "")

	if cfg.Mode != dto.PowerOnSymXchange {
		t.Fatalf("mode = %q", cfg.Mode)
	}
	if cfg.Host != "core.lakesidecu.example" || cfg.Port != "8087" {
		t.Fatalf("connection params not mapped: %+v", cfg)
	}
	if cfg.Password != "s3cret" {
		t.Fatalf("password should be the decrypted plaintext")
	}
	if secrets.key != "cu_42" {
		t.Fatalf("secret looked up under %q", secrets.key)
	}
	if branding.Name != "Lakeside Credit Union" {
		t.Fatalf("branding not returned: %+v", branding)
	}
}

func TestResolveFallsBackToCUID(t *testing.T) {
	secrets := &stubCredentialSecrets{err: errs.NewNotFoundError("no secret")}
	svc := NewCredentialService(secrets, &stubTenantLookup{tenant: &models.Tenant{}}, &stubDecrypter{})

	svc.Resolve(helpers.TestCtx(), "", "67890")

	if secrets.key != "67890" {
		t.Fatalf("cu id should key the secret when tenant id is empty, got %q", secrets.key)
	}
}

func TestResolveDegradesOnSecretFailure(t *testing.T) {
	secrets := &stubCredentialSecrets{err: errors.New("secret manager unavailable")}
	tenants := &stubTenantLookup{tenant: &models.Tenant{Name: "Lakeside Credit Union"}}
	svc := NewCredentialService(secrets, tenants, &stubDecrypter{})

	cfg, branding := svc.Resolve(helpers.TestCtx(), "cu_42", "")

	if !cfg.IsZero() {
		t.Fatalf("config should be zero on secret failure: %+v", cfg)
	}
	if branding.Name != "Lakeside Credit Union" {
		t.Fatalf("branding should survive a credential failure")
	}
}

func TestResolveDegradesOnMalformedBlob(t *testing.T) {
	secrets := &stubCredentialSecrets{blob: "not json"}
	svc := NewCredentialService(secrets, &stubTenantLookup{tenant: &models.Tenant{}}, &stubDecrypter{})

	cfg, _ := svc.Resolve(helpers.TestCtx(), "cu_42", "")
	if !cfg.IsZero() {
		t.Fatalf("config should be zero on malformed blob: %+v", cfg)
	}
}

func TestResolveDegradesOnDecryptFailure(t *testing.T) {
	secrets := &stubCredentialSecrets{blob: credentialBlob}
	svc := NewCredentialService(secrets, &stubTenantLookup{tenant: &models.Tenant{}}, &stubDecrypter{err: errors.New("kms denied")})

	cfg, _ := svc.Resolve(helpers.TestCtx(), "cu_42", "")
	if !cfg.IsZero() {
		t.Fatalf("config should be zero on decrypt failure: %+v", cfg)
	}
}

func TestResolveDegradesOnTenantLookupFailure(t *testing.T) {
	secrets := &stubCredentialSecrets{blob: credentialBlob}
	tenants := &stubTenantLookup{err: errors.New("firestore unavailable")}
	svc := NewCredentialService(secrets, tenants, &stubDecrypter{plaintext: "s3cret"})

	cfg, branding := svc.Resolve(helpers.TestCtx(), "cu_42", "")

	if cfg.Host == "" {
		t.Fatalf("connection config should survive a branding failure")
	}
	if branding.Name != "" || branding.RoutingNumber != "" {
		t.Fatalf("branding should be zero on lookup failure: %+v", branding)
	}
}

func TestParseModeDefaultsToMock(t *testing.T) {
	if parseMode("") != dto.PowerOnMock {
		t.Fatalf("empty mode should default to mock")
	}
	if parseMode("direct") != dto.PowerOnDirect {
		t.Fatalf("direct mode not recognized")
	}
}
