// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	KeyInternalError = "error.internal"
	KeyRateLimited   = "error.rate_limited"
	KeyNotFound      = "error.not_found"
	KeyInvalidID     = "error.invalid_id"
	KeyConflict      = "error.conflict"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthAdminGone          = "auth.admin_gone"
	KeyAuthWrongPassword      = "auth.wrong_password"

	// Admin management
	KeyAdminAccessDenied  = "admin.access_denied"
	KeyAdminEmailExists   = "admin.email_exists"
	KeyAdminSelfDelete    = "admin.self_delete"
	KeyAdminLastSuper     = "admin.last_super_admin"
	KeyAdminProtected     = "admin.protected"
	KeyAdminPasswordSaved = "admin.password_changed"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Uploads
	KeyUploadMissingFile  = "upload.missing_file"
	KeyUploadTooLarge     = "upload.too_large"
	KeyUploadNotImage     = "upload.not_image"
	KeyUploadNotAvailable = "upload.not_available"
)
