package models

import (
	"time"
)

// CallSession correlates a phone call to caller identity and authentication
// state. Documents are keyed by UCID (the telephony call identifier).
type CallSession struct {
	UCID      string    `firestore:"ucid" json:"ucid"`
	CallSID   string    `firestore:"callSid" json:"callSid"`
	ANI       string    `firestore:"ani" json:"ani"`
	MemberID  string    `firestore:"memberId" json:"memberId"`
	Verified  bool      `firestore:"verified" json:"verified"`
	TenantID  string    `firestore:"tenantId" json:"tenantId"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
