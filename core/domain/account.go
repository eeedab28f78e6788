// ABOUTME: Account domain model represents an authenticated account and its plan
// ABOUTME: Plans gate how many websites an account may create

package domain

// Plan tiers recognized by the quota gate.
const (
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Account represents an authenticated caller of the API.
type Account struct {
	// ID is the unique identifier for the account
	ID string

	// Email is the account's contact address
	Email string

	// Plan is the subscription tier (basic, pro, enterprise)
	Plan string

	// WebsitesCreated is the account's current usage counter
	WebsitesCreated int
}
