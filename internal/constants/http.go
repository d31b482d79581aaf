package constants

// HTTP Header Names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
)

// Bearer token scheme prefix
const BearerScheme = "Bearer"

// Common HTTP Error Messages
const (
	MsgUnauthorized       = "Not authorized to access this route"
	MsgForbidden          = "Access denied. Insufficient permissions"
	MsgInvalidCredentials = "Invalid email or password"
	MsgValidationFailed   = "Validation failed"
	MsgInternalError      = "Internal server error"
)
