// Package config loads runtime configuration from environment variables.
package config

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Mongo     MongoConfig
	JWTSecret string
	Log       LogConfig
	Metrics   MetricsConfig
}

// MongoConfig selects and addresses the document store. An empty URI
// falls back to the in-memory store.
type MongoConfig struct {
	URI      string
	Database string
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is text or json.
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port: envOrDefault(envPort, defaultPort),
		Mongo: MongoConfig{
			URI:      envOrDefault(envMongoURI, defaultMongoURI),
			Database: envOrDefault(envMongoDB, defaultMongoDB),
		},
		JWTSecret: envOrDefault(envJWTSecret, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}
