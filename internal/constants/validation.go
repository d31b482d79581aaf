package constants

// Field Length Limits
const (
	MinPasswordLength = 6
	MaxPasswordLength = 100
	MinNameLength     = 2
	MaxNameLength     = 50
	MaxBioLength      = 500
)

// Token Settings
const (
	DefaultTokenExpiryHours = 7 * 24 // 7 days
)

// Password hashing work factor. Applied only when a stored password value
// changes, never on unrelated profile writes.
const BcryptCost = 12
