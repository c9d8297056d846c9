package services

import (
	"strings"

	"github.com/connexcu/voice-backend/internal/dto"
)

// locationDirectory is the seam for ATM/branch lookup. The shipped directory
// is static; a shared-branching location service can replace it without
// touching the handler contract.
type locationDirectory []dto.Location

// find filters by location type and prefers zip-prefix matches (first three
// digits approximate the local area). When nothing is nearby it falls back to
// the full directory so the caller always hears options.
func (d locationDirectory) find(zipCode, locationType string) []dto.Location {
	byType := make([]dto.Location, 0, len(d))
	for _, loc := range d {
		if locationType != "both" && loc.Type != locationType {
			continue
		}
		byType = append(byType, loc)
	}

	if len(zipCode) >= 3 {
		prefix := zipCode[:3]
		nearby := make([]dto.Location, 0, len(byType))
		for _, loc := range byType {
			if strings.HasPrefix(loc.ZipCode, prefix) {
				nearby = append(nearby, loc)
			}
		}
		if len(nearby) > 0 {
			return nearby
		}
	}
	return byType
}

var staticLocations = locationDirectory{
	{Name: "Main Branch", Type: "branch", Address: "100 Commerce Street", ZipCode: "75201"},
	{Name: "Uptown Branch", Type: "branch", Address: "2200 McKinney Avenue", ZipCode: "75204"},
	{Name: "Downtown ATM", Type: "atm", Address: "400 Elm Street", ZipCode: "75202"},
	{Name: "Airport ATM", Type: "atm", Address: "2400 Aviation Drive", ZipCode: "75261"},
	{Name: "Northside Branch", Type: "branch", Address: "8500 North Freeway", ZipCode: "76177"},
	{Name: "Campus ATM", Type: "atm", Address: "1155 Union Circle", ZipCode: "76203"},
}
