package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// defaultConfig returns the values used when no other source sets a field.
// DSN and TokenSignKey have no defaults: both are required.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-blog-api",
			TokenDuration:    30 * time.Minute,
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:        "localhost:8080",
			RequestTimeout:     30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}
