package store

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Secrets path
// projects/{project}/secrets/poweron-credentials-{tenantKey}/versions/{version}

type powerOnSecretsStore struct {
	client    *secretmanager.Client
	projectID string
	prefix    string
}

func NewPowerOnSecretsStore(client *secretmanager.Client, projectID string) *powerOnSecretsStore {
	return &powerOnSecretsStore{
		client:    client,
		projectID: projectID,
		prefix:    "poweron-credentials",
	}
}

func (s *powerOnSecretsStore) secretID(tenantKey string) string {
	return fmt.Sprintf("%s-%s", s.prefix, tenantKey)
}

func (s *powerOnSecretsStore) secretName(tenantKey string) string {
	return fmt.Sprintf("projects/%s/secrets/%s", s.projectID, s.secretID(tenantKey))
}

func (s *powerOnSecretsStore) ensureSecret(ctx context.Context, tenantKey string) error {
	name := s.secretName(tenantKey)
	_, err := s.client.GetSecret(ctx, &secretmanagerpb.GetSecretRequest{Name: name})
	if status.Code(err) == codes.NotFound {
		_, err = s.client.CreateSecret(ctx, &secretmanagerpb.CreateSecretRequest{
			Parent:   fmt.Sprintf("projects/%s", s.projectID),
			SecretId: s.secretID(tenantKey),
			Secret: &secretmanagerpb.Secret{
				Replication: &secretmanagerpb.Replication{
					Replication: &secretmanagerpb.Replication_Automatic_{Automatic: &secretmanagerpb.Replication_Automatic{}},
				},
			},
		})
	}
	return err
}

// StoreCredentials writes the tenant's core-banking connection blob (JSON)
// as a new secret version.
func (s *powerOnSecretsStore) StoreCredentials(ctx context.Context, tenantKey, payload string) error {
	if err := s.ensureSecret(ctx, tenantKey); err != nil {
		return err
	}
	_, err := s.client.AddSecretVersion(ctx, &secretmanagerpb.AddSecretVersionRequest{
		Parent: s.secretName(tenantKey),
		Payload: &secretmanagerpb.SecretPayload{
			Data: []byte(payload),
		},
	})
	return err
}

func (s *powerOnSecretsStore) GetCredentials(ctx context.Context, tenantKey string) (string, error) {
	res, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("%s/versions/latest", s.secretName(tenantKey)),
	})
	if err != nil {
		return "", err
	}
	return string(res.Payload.Data), nil
}

func (s *powerOnSecretsStore) DeleteCredentials(ctx context.Context, tenantKey string) error {
	err := s.client.DeleteSecret(ctx, &secretmanagerpb.DeleteSecretRequest{
		Name: s.secretName(tenantKey),
	})
	return err
}
