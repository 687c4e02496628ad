package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestPrincipalCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		roles    []Role
		cap      Capability
		expected bool
	}{
		{"emission role reads emission", []Role{RoleGovernmentEmission}, CapEmissionRead, true},
		{"emission role writes emission", []Role{RoleGovernmentEmission}, CapEmissionWrite, true},
		{"emission role cannot manage users", []Role{RoleGovernmentEmission}, CapUsersManage, false},
		{"emission role cannot touch greening", []Role{RoleGovernmentEmission}, CapGreeningWrite, false},
		{"air quality role writes violations", []Role{RoleAirQuality}, CapAirQualityWrite, true},
		{"greening role exports reports", []Role{RoleUrbanGreening}, CapReportsExport, true},
		{"legacy tree_management aliases urban_greening", []Role{RoleTreeManagement}, CapGreeningWrite, true},
		{"admin manages users", []Role{RoleAdmin}, CapUsersManage, true},
		{"admin covers every domain", []Role{RoleAdmin}, CapAirQualityWrite, true},
		{"multiple roles union", []Role{RoleGovernmentEmission, RoleAirQuality}, CapAirQualityRead, true},
		{"no roles no caps", nil, CapEmissionRead, false},
		{"unknown role no caps", []Role{Role("auditor")}, CapEmissionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrincipal(uuid.New(), "user@example.com", false, tt.roles)
			if got := p.HasCapability(tt.cap); got != tt.expected {
				t.Errorf("HasCapability(%s) = %v, expected %v", tt.cap, got, tt.expected)
			}
		})
	}
}

func TestPrincipalSuperAdminOverride(t *testing.T) {
	p := NewPrincipal(uuid.New(), "root@example.com", true, nil)

	for _, cap := range []Capability{CapEmissionWrite, CapUsersManage, CapReportsExport} {
		if !p.HasCapability(cap) {
			t.Errorf("super admin should hold %s", cap)
		}
	}
	if !p.IsAdmin() {
		t.Error("super admin should report IsAdmin")
	}
}

func TestPrincipalIsAdmin(t *testing.T) {
	admin := NewPrincipal(uuid.New(), "a@example.com", false, []Role{RoleAdmin})
	if !admin.IsAdmin() {
		t.Error("admin role should report IsAdmin")
	}

	regular := NewPrincipal(uuid.New(), "b@example.com", false, []Role{RoleAirQuality})
	if regular.IsAdmin() {
		t.Error("non-admin role should not report IsAdmin")
	}
}
