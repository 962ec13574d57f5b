package normalize

import (
	"strings"

	"meetscribe-backend/internal/task/domain"
)

// roleSynonym maps a free-text role mention to a canonical role.
// Matching is substring containment against the lower-cased input; the
// slice order is the documented precedence, first entry wins.
type roleSynonym struct {
	key  string
	role domain.Role
}

var roleSynonyms = []roleSynonym{
	{"sales analyst", domain.RoleSalesAnalyst},
	{"sales representative", domain.RoleSalesAnalyst},
	{"sales rep", domain.RoleSalesAnalyst},
	{"sales", domain.RoleSalesAnalyst},

	{"presentation designer", domain.RolePresentationDesigner},
	{"presentation", domain.RolePresentationDesigner},
	{"designer", domain.RolePresentationDesigner},

	{"software engineer", domain.RoleSoftwareEngineer},
	{"engineer", domain.RoleSoftwareEngineer},
	{"developer", domain.RoleSoftwareEngineer},
	{"programmer", domain.RoleSoftwareEngineer},

	{"marketing manager", domain.RoleMarketingManager},
	{"marketing lead", domain.RoleMarketingManager},
	{"marketing", domain.RoleMarketingManager},
}

// Role maps a free-text role mention to a canonical role name. Input
// that matches no synonym is returned unchanged; downstream validation
// rejects it via IsCanonical.
func Role(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return raw
	}
	for _, s := range roleSynonyms {
		if strings.Contains(lower, s.key) {
			return string(s.role)
		}
	}
	return raw
}

// IsCanonical reports whether role is a member of the closed role set.
func IsCanonical(role string) bool {
	for _, r := range domain.CanonicalRoles() {
		if role == string(r) {
			return true
		}
	}
	return false
}
