package utils

// Application constants
const (
	// Application name
	AppName = "BrewPoints"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "brewpoints"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Default voucher validity window in days
	DefaultVoucherValidityDays = 30
)
