// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to programhub. All
// values come from config files, PROGRAMHUB_* environment variables, or
// command-line flags, merged by LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session token configuration
	TokenSecret string        // HMAC secret for signing login tokens
	TokenTTL    time.Duration // how long issued tokens stay valid

	// Volunteer intake
	VolunteerSource string // default source tag for submissions without one

	// Database operation deadlines
	DBTimeoutShort  time.Duration
	DBTimeoutMedium time.Duration
	DBTimeoutLong   time.Duration
}
