package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
)

type tenantStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewTenantStore(client *firestore.Client) *tenantStore {
	return &tenantStore{
		client:     client,
		collection: client.Collection("tenants"),
	}
}

// GetByKey resolves a tenant by tenant id (the document id) or, failing that,
// by the alternate CU id. The two keys are interchangeable at the call layer.
func (s *tenantStore) GetByKey(ctx context.Context, tenantID, cuID string) (*models.Tenant, error) {
	if tenantID != "" {
		doc, err := s.collection.Doc(tenantID).Get(ctx)
		if err == nil {
			return docToTenant(doc)
		}
		if status.Code(err) != codes.NotFound {
			return nil, errs.NewDatabaseError("read", "failed to load tenant", err)
		}
	}

	if cuID != "" {
		iter := s.collection.Where("cuId", "==", cuID).Limit(1).Documents(ctx)
		defer iter.Stop()

		doc, err := iter.Next()
		if err == iterator.Done {
			return nil, errs.NewNotFoundError("tenant not found")
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to query tenant by cu id", err)
		}
		return docToTenant(doc)
	}

	return nil, errs.NewNotFoundError("tenant not found")
}

func (s *tenantStore) Update(ctx context.Context, tenantID string, tenant *models.Tenant) error {
	tenant.TenantID = tenantID
	tenant.UpdatedAt = time.Now()
	_, err := s.collection.Doc(tenantID).Set(ctx, tenant, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update tenant", err)
	}
	return nil
}

func docToTenant(doc *firestore.DocumentSnapshot) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := doc.DataTo(&tenant); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse tenant", err)
	}
	if tenant.TenantID == "" {
		tenant.TenantID = doc.Ref.ID
	}
	return &tenant, nil
}
