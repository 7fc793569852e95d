package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Renter permissions
	PermissionWalletRead   = "wallet:read"
	PermissionBookingRead  = "booking:read"
	PermissionBookingWrite = "booking:write"
	PermissionReviewWrite  = "review:write"

	// Hubber permissions
	PermissionListingRead  = "listing:read"
	PermissionListingWrite = "listing:write"

	PermissionChangePassword = "user:change-password"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "admin":
		return []string{
			PermissionWalletRead,
			PermissionBookingRead,
			PermissionBookingWrite,
			PermissionReviewWrite,
			PermissionListingRead,
			PermissionListingWrite,
			PermissionChangePassword,
			PermissionReadAdmin,
			PermissionWriteAdmin,
		}
	case "hubber":
		return []string{
			PermissionWalletRead,
			PermissionBookingRead,
			PermissionBookingWrite,
			PermissionReviewWrite,
			PermissionListingRead,
			PermissionListingWrite,
			PermissionChangePassword,
		}
	case "renter":
		return []string{
			PermissionWalletRead,
			PermissionBookingRead,
			PermissionBookingWrite,
			PermissionReviewWrite,
			PermissionListingRead,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
