package model

// Scope carries the request-scoped identity for a single operation call.
// It is passed by value into every use case so no calendar identity or session
// state lives in ambient/global storage.
type Scope struct {
	SessionID  string
	CalendarID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
