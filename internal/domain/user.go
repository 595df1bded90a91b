package domain

import "time"

// UserRole distinguishes platform administrators from regular members.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// AccountStatus represents the suspension state of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "actif"
	AccountStatusSuspended AccountStatus = "suspendu"
)

// AccountType distinguishes individual sellers from agencies.
type AccountType string

const (
	AccountTypeIndividual   AccountType = "particulier"
	AccountTypeProfessional AccountType = "professionnel"
)

// User is a platform member. Suspension only flips AccountStatus; the
// member's listings are not hidden automatically.
type User struct {
	ID                   string
	Email                string
	FullName             string
	Phone                string
	PasswordHash         string
	Role                 UserRole
	AccountStatus        AccountStatus
	AccountType          AccountType
	EmailVerified        bool
	PhoneVerified        bool
	Region               string
	NotificationSettings map[string]bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
