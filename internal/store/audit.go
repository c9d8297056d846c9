package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
)

type auditStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewAuditStore(client *firestore.Client) *auditStore {
	return &auditStore{
		client:     client,
		collection: client.Collection("audit_events"),
	}
}

func (s *auditStore) Record(ctx context.Context, event models.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	_, err := s.collection.Doc(event.ID).Create(ctx, event)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to record audit event", err)
	}
	return nil
}

func (s *auditStore) ListByMember(ctx context.Context, memberID string, limit int) ([]models.AuditEvent, error) {
	query := s.collection.Where("memberId", "==", memberID).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.AuditEvent
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list audit events", err)
		}
		var event models.AuditEvent
		if err := doc.DataTo(&event); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse audit event", err)
		}
		out = append(out, event)
	}
	return out, nil
}
