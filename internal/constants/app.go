package constants

// Application Information
const (
	AppName    = "MentorBridge API"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Default Application Settings
const (
	DefaultPort        = "5000"
	DefaultEnvironment = EnvDevelopment
)

// User Roles
const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

// Mentorship Pair Statuses
const (
	PairStatusPending   = "pending"
	PairStatusActive    = "active"
	PairStatusCompleted = "completed"
	PairStatusCancelled = "cancelled"
)

// Cache Key Prefixes
const (
	CacheKeyPrefix = "mentorbridge:"
	CacheKeyStats  = CacheKeyPrefix + "stats:users"
)
