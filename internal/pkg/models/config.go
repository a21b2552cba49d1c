package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMS      SMSConfig
	Mail     MailConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
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
	Driver    string
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains bearer token configuration
type JWTConfig struct {
	Secret            string
	Issuer            string
	AccessExpiryDays  int // access token lifetime, scope "*"
	RefreshExpiryDays int // refresh token lifetime, scope "refresh"
}

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	ExpiryMinutes int
}

// SMSConfig contains the SMS gateway configuration
type SMSConfig struct {
	BaseURI  string
	Endpoint string
	SenderID string
	Token    string
}

// MailConfig contains SMTP configuration for outbound mail
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
