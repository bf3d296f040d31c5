package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Module names a functional area gated by the access-control check.
type Module string

const (
	ModuleSales   Module = "sales"
	ModuleCash    Module = "cash"
	ModuleStock   Module = "stock"
	ModuleReports Module = "reports"
	ModuleHistory Module = "history"
	ModuleAdmin   Module = "admin"
)

// AllModules lists every gated module, in navigation order.
var AllModules = []Module{ModuleSales, ModuleCash, ModuleStock, ModuleReports, ModuleHistory, ModuleAdmin}

// AppUser is an operator of the POS. The PIN is a 4-digit capability under a
// trusted-device threat model, not a cryptographic credential.
type AppUser struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PIN            string   `json:"pin"`
	Role           Role     `json:"role"`
	IsActive       bool     `json:"is_active"`
	AllowedModules []Module `json:"allowed_modules"`
}

// IsAdmin normalizes the stored role (trim + uppercase) before comparing, so
// values like " admin " still grant full access.
func (u *AppUser) IsAdmin() bool {
	return strings.ToUpper(strings.TrimSpace(string(u.Role))) == string(RoleAdmin)
}

// CanAccess is the single capability check consulted before exposing a module.
// Admins see everything; other roles need an explicit grant.
func (u *AppUser) CanAccess(m Module) bool {
	if u.IsAdmin() {
		return true
	}
	for _, allowed := range u.AllowedModules {
		if allowed == m {
			return true
		}
	}
	return false
}

// Validate checks the fields an administrator can set.
func (u *AppUser) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if len(u.PIN) != 4 {
		return &ValidationError{Field: "pin", Reason: "pin must be exactly 4 digits"}
	}
	for _, c := range u.PIN {
		if c < '0' || c > '9' {
			return &ValidationError{Field: "pin", Reason: "pin must be numeric"}
		}
	}
	for _, m := range u.AllowedModules {
		if !validModule(m) {
			return &ValidationError{Field: "allowed_modules", Reason: "unknown module " + string(m)}
		}
	}
	return nil
}

func validModule(m Module) bool {
	for _, known := range AllModules {
		if m == known {
			return true
		}
	}
	return false
}

// Session is the authenticated user snapshot held for the process lifetime and
// persisted in the durable session slot so a restart does not force a re-login.
type Session struct {
	User     AppUser   `json:"user"`
	IssuedAt time.Time `json:"issued_at"`
}
