package models

import (
	"time"
)

// Tenant is one credit union in the multi-tenant deployment. CUID is an
// alternate tenant key; either identifies the tenant.
type Tenant struct {
	TenantID      string    `firestore:"tenantId" json:"tenantId"`
	CUID          string    `firestore:"cuId" json:"cuId"`
	Name          string    `firestore:"name" json:"name"`
	CharterNumber string    `firestore:"charterNumber" json:"charterNumber"`
	RoutingNumber string    `firestore:"routingNumber" json:"routingNumber"`
	SupportPhone  string    `firestore:"supportPhone" json:"supportPhone"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
