package config

const (
	envPort         = "PORT"
	envMongoURI     = "MONGO_URI"
	envMongoDB      = "MONGO_DB"
	envJWTSecret    = "JWT_SECRET"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Empty URI selects the in-memory store for local runs and tests.
	defaultMongoURI    = ""
	defaultMongoDB     = "cricket"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultMetricsPort = "9090"
	defaultService     = "cricket-scoring-service"
)
