package model

import "testing"

func TestRoleListValue(t *testing.T) {
	tests := []struct {
		name     string
		list     RoleList
		expected string
	}{
		{"empty", nil, "{}"},
		{"single", RoleList{RoleAdmin}, "{admin}"},
		{"multiple", RoleList{RoleAirQuality, RoleUrbanGreening}, "{air_quality,urban_greening}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.list.Value()
			if err != nil {
				t.Fatalf("Value failed: %v", err)
			}
			if value != tt.expected {
				t.Errorf("Value = %v, expected %s", value, tt.expected)
			}
		})
	}
}

func TestRoleListScan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected RoleList
	}{
		{"nil", nil, nil},
		{"empty literal", "{}", RoleList{}},
		{"plain", "{admin,air_quality}", RoleList{RoleAdmin, RoleAirQuality}},
		{"quoted elements", `{"admin","urban_greening"}`, RoleList{RoleAdmin, RoleUrbanGreening}},
		{"bytes", []byte("{government_emission}"), RoleList{RoleGovernmentEmission}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list RoleList
			if err := list.Scan(tt.input); err != nil {
				t.Fatalf("Scan failed: %v", err)
			}
			if len(list) != len(tt.expected) {
				t.Fatalf("Scan = %v, expected %v", list, tt.expected)
			}
			for i := range list {
				if list[i] != tt.expected[i] {
					t.Errorf("Scan[%d] = %s, expected %s", i, list[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRoleListScanRejectsUnknownType(t *testing.T) {
	var list RoleList
	if err := list.Scan(42); err == nil {
		t.Error("expected an error for an unsupported source type")
	}
}
