package dto

// Console-facing tenant admin payloads.

type UpdateTenantRequest struct {
	Name          string `json:"name,omitempty"`
	CharterNumber string `json:"charterNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	SupportPhone  string `json:"supportPhone,omitempty"`
}

type UpdateCoreCredentialsRequest struct {
	Mode       string `json:"mode"` // mock, symxchange, direct
	Host       string `json:"host"`
	Port       string `json:"port"`
	DeviceType string `json:"deviceType"`
	UserNumber string `json:"userNumber"`
	Password   string `json:"password"`
}
