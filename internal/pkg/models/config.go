package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Reporter  ReporterConfig
	Collector CollectorConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// ReporterConfig contains the reporting agent configuration.
// IntervalMs is the cadence between reporting cycles, AcquireTimeoutMs is the
// maximum wait for a single position fix.
type ReporterConfig struct {
	CollectorURL     string
	SessionToken     string
	IntervalMs       int
	AcquireTimeoutMs int
	Provider         string // "serial" or "simulated"
	SerialPort       string
	BaudRate         int
	StatusPort       int
}

// CollectorConfig contains collector service specific configuration
type CollectorConfig struct {
	GeohashPrecision uint
}
