package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	APIKey   APIKeyConfig
	Mpesa    MpesaConfig
	Paystack PaystackConfig
	Payment  PaymentConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
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

// APIKeyConfig contains API keys for service-to-service endpoints
type APIKeyConfig struct {
	AdminKey string
}

// MpesaConfig contains Daraja API credentials for STK push
type MpesaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	PassKey        string
	ShortCode      string
	CallbackURL    string
	TimeoutSeconds int
}

// PaystackConfig contains Paystack API configuration
type PaystackConfig struct {
	BaseURL        string
	SecretKey      string
	CallbackURL    string
	TimeoutSeconds int
}

// PaymentConfig contains payment lifecycle policy values
type PaymentConfig struct {
	// PendingTimeoutMinutes is the window after which a pending payment that
	// never received a provider callback may be administratively failed.
	PendingTimeoutMinutes int
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
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
