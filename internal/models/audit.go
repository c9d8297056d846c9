package models

import (
	"time"
)

// AuditEvent is an append-only record of a sensitive voice operation, e.g. a
// lost-card report. Detail keys are event-specific.
type AuditEvent struct {
	ID        string         `firestore:"id" json:"id"`
	Event     string         `firestore:"event" json:"event"`
	TenantID  string         `firestore:"tenantId" json:"tenantId"`
	MemberID  string         `firestore:"memberId" json:"memberId"`
	CallSID   string         `firestore:"callSid" json:"callSid"`
	Detail    map[string]any `firestore:"detail" json:"detail"`
	CreatedAt time.Time      `firestore:"createdAt" json:"createdAt"`
}
