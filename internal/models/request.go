package models

import (
	"time"
)

// Back-office request records. The voice layer only captures these durably
// and confirms; fulfillment happens asynchronously outside this service.

type TravelNotice struct {
	ID          string    `firestore:"id" json:"id"`
	TenantID    string    `firestore:"tenantId" json:"tenantId"`
	MemberID    string    `firestore:"memberId" json:"memberId"`
	Destination string    `firestore:"destination" json:"destination"`
	StartDate   string    `firestore:"startDate" json:"startDate"`
	EndDate     string    `firestore:"endDate" json:"endDate"`
	Status      string    `firestore:"status" json:"status"` // always "active" on insert
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

type StatementRequest struct {
	ID              string    `firestore:"id" json:"id"`
	TenantID        string    `firestore:"tenantId" json:"tenantId"`
	MemberID        string    `firestore:"memberId" json:"memberId"`
	AccountType     string    `firestore:"accountType" json:"accountType"`
	AccountSuffix   string    `firestore:"accountSuffix" json:"accountSuffix"`
	DeliveryMethod  string    `firestore:"deliveryMethod" json:"deliveryMethod"`
	StatementPeriod string    `firestore:"statementPeriod" json:"statementPeriod"`
	Status          string    `firestore:"status" json:"status"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}

type CreditLimitRequest struct {
	ID             string    `firestore:"id" json:"id"`
	TenantID       string    `firestore:"tenantId" json:"tenantId"`
	MemberID       string    `firestore:"memberId" json:"memberId"`
	CardLastFour   string    `firestore:"cardLastFour" json:"cardLastFour"`
	RequestedLimit float64   `firestore:"requestedLimit" json:"requestedLimit"`
	Status         string    `firestore:"status" json:"status"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
}

// BiometricSetting is upserted keyed by member id; OptIn reflects the latest
// enrollment choice.
type BiometricSetting struct {
	MemberID  string    `firestore:"memberId" json:"memberId"`
	TenantID  string    `firestore:"tenantId" json:"tenantId"`
	OptIn     bool      `firestore:"optIn" json:"optIn"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
