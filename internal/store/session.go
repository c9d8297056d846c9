package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/connexcu/voice-backend/internal/errs"
	"github.com/connexcu/voice-backend/internal/models"
)

type sessionStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewSessionStore(client *firestore.Client) *sessionStore {
	return &sessionStore{
		client:     client,
		collection: client.Collection("call_sessions"),
	}
}

// Get fetches the call session keyed by UCID. A missing document returns a
// NotFoundError; the resolver treats that as "no enrichment", not a failure.
func (s *sessionStore) Get(ctx context.Context, ucid string) (*models.CallSession, error) {
	doc, err := s.collection.Doc(ucid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("call session not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to load call session", err)
	}

	var session models.CallSession
	if err := doc.DataTo(&session); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse call session", err)
	}
	return &session, nil
}

// MarkVerified writes back the authenticated member id. Merge-set keeps this
// idempotent: repeated authentications update the same document, last write
// wins on memberId.
func (s *sessionStore) MarkVerified(ctx context.Context, ucid, memberID string) error {
	_, err := s.collection.Doc(ucid).Set(ctx, map[string]any{
		"memberId":  memberID,
		"verified":  true,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to mark session verified", err)
	}
	return nil
}
