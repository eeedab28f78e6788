// ABOUTME: Plan-based quota gate deciding whether an account may create another website
// ABOUTME: Pure decision logic; the atomic slot reservation lives in the storage layer

package quota

import (
	"sitegen-api/core/domain"
	"sitegen-api/core/interfaces"
)

// Plan limits for website creation. Unknown plans fall back to the basic
// limit rather than being rejected outright.
const (
	BasicLimit      = 3
	ProLimit        = 10
	EnterpriseLimit = 999999
)

// Gate evaluates website creation quotas against an account's plan
type Gate struct{}

// NewGate creates a new quota gate
func NewGate() *Gate {
	return &Gate{}
}

// Admit reports whether the account may create one more website. The decision
// is advisory: creation still goes through the storage layer's conditional
// slot reservation, which is the authority under concurrent requests.
func (g *Gate) Admit(account *domain.Account) interfaces.QuotaDecision {
	limit := PlanLimit(account.Plan)
	return interfaces.QuotaDecision{
		Allowed:      account.WebsitesCreated < limit,
		Limit:        limit,
		CurrentCount: account.WebsitesCreated,
	}
}

// PlanLimit returns the website creation limit for a plan name
func PlanLimit(plan string) int {
	switch plan {
	case domain.PlanPro:
		return ProLimit
	case domain.PlanEnterprise:
		return EnterpriseLimit
	default:
		return BasicLimit
	}
}
