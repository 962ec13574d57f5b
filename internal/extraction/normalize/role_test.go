package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meetscribe-backend/internal/task/domain"
)

func TestRoleSynonyms(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Role
	}{
		{"sales", domain.RoleSalesAnalyst},
		{"Sales Analyst", domain.RoleSalesAnalyst},
		{"sales rep", domain.RoleSalesAnalyst},
		{"sales representative", domain.RoleSalesAnalyst},
		{"presentation", domain.RolePresentationDesigner},
		{"designer", domain.RolePresentationDesigner},
		{"Presentation Designer", domain.RolePresentationDesigner},
		{"engineer", domain.RoleSoftwareEngineer},
		{"developer", domain.RoleSoftwareEngineer},
		{"software engineer", domain.RoleSoftwareEngineer},
		{"programmer", domain.RoleSoftwareEngineer},
		{"marketing", domain.RoleMarketingManager},
		{"marketing manager", domain.RoleMarketingManager},
		{"marketing lead", domain.RoleMarketingManager},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), Role(tt.in), "input %q", tt.in)
	}
}

func TestRoleContainmentMatch(t *testing.T) {
	// Synonym matching is containment, not equality.
	assert.Equal(t, string(domain.RoleSoftwareEngineer), Role("senior backend developer"))
	assert.Equal(t, string(domain.RoleSalesAnalyst), Role("  the Sales team  "))
}

func TestRoleUnknownPassthrough(t *testing.T) {
	assert.Equal(t, "Chief Vibes Officer", Role("Chief Vibes Officer"))
	assert.Equal(t, "", Role(""))
}

func TestIsCanonical(t *testing.T) {
	for _, r := range domain.CanonicalRoles() {
		assert.True(t, IsCanonical(string(r)))
	}
	assert.False(t, IsCanonical("Chief Vibes Officer"))
	assert.False(t, IsCanonical("sales"))
	assert.False(t, IsCanonical(""))
}
