package model

import "github.com/google/uuid"

// Capability is a typed permission evaluated once per session from the user's
// roles, instead of re-deriving string checks per call site.
type Capability string

const (
	CapEmissionRead    Capability = "emission:read"
	CapEmissionWrite   Capability = "emission:write"
	CapAirQualityRead  Capability = "air_quality:read"
	CapAirQualityWrite Capability = "air_quality:write"
	CapGreeningRead    Capability = "greening:read"
	CapGreeningWrite   Capability = "greening:write"
	CapUsersManage     Capability = "users:manage"
	CapReportsExport   Capability = "reports:export"
)

var roleCapabilities = map[Role][]Capability{
	RoleGovernmentEmission: {CapEmissionRead, CapEmissionWrite, CapReportsExport},
	RoleAirQuality:         {CapAirQualityRead, CapAirQualityWrite, CapReportsExport},
	// tree_management is the legacy name for urban_greening; both map to the
	// same capabilities.
	RoleTreeManagement: {CapGreeningRead, CapGreeningWrite, CapReportsExport},
	RoleUrbanGreening:  {CapGreeningRead, CapGreeningWrite, CapReportsExport},
	RoleAdmin: {
		CapEmissionRead, CapEmissionWrite,
		CapAirQualityRead, CapAirQualityWrite,
		CapGreeningRead, CapGreeningWrite,
		CapUsersManage, CapReportsExport,
	},
}

type Principal struct {
	UserID       uuid.UUID
	Email        string
	IsSuperAdmin bool
	Roles        []Role

	caps map[Capability]struct{}
}

// NewPrincipal computes the capability set once; HasCapability is then a map
// lookup for the rest of the request.
func NewPrincipal(userID uuid.UUID, email string, isSuperAdmin bool, roles []Role) Principal {
	caps := make(map[Capability]struct{})
	for _, role := range roles {
		for _, cap := range roleCapabilities[role] {
			caps[cap] = struct{}{}
		}
	}
	return Principal{
		UserID:       userID,
		Email:        email,
		IsSuperAdmin: isSuperAdmin,
		Roles:        roles,
		caps:         caps,
	}
}

// HasCapability reports whether the principal may perform the given action.
// The super-admin flag overrides all role checks.
func (p Principal) HasCapability(c Capability) bool {
	if p.IsSuperAdmin {
		return true
	}
	_, ok := p.caps[c]
	return ok
}

func (p Principal) IsAdmin() bool {
	if p.IsSuperAdmin {
		return true
	}
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
