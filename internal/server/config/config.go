// Package config handles configuration for the server component:
// defaults, JSON overlay, environment overlay and command-line flags,
// applied in that order.
package config

import "time"

// Password hashing schemes accepted in PasswordScheme.
const (
	SchemePBKDF2SHA256 = "pbkdf2-sha256"
	SchemeArgon2id     = "argon2id"
)

// Config holds runtime settings for the TokenKeeper server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the two transports.
//   - DatabaseDriver: "pgx" for PostgreSQL or "sqlite" for the embedded store.
//   - DatabaseDSN: data source for the selected driver.
//   - SecretKey: HMAC secret for signing tokens (HS256). Do not use the default in prod.
//   - SecretKeyFile / SecretKeyS3URI: alternative sources of the signing secret,
//     taking precedence over SecretKey when set.
//   - S3RootUser / S3RootPassword / S3Region / S3BaseEndpoint: object storage
//     access used only when SecretKeyS3URI is set.
//   - PasswordScheme / PBKDF2Rounds: password hashing for new accounts.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP string        `env:"TOKENKEEPER_HTTP_ADDR"`
	EndpointAddrGRPC string        `env:"TOKENKEEPER_GRPC_ADDR"`
	DatabaseDriver   string        `env:"TOKENKEEPER_DB_DRIVER"`
	DatabaseDSN      string        `env:"TOKENKEEPER_DB_DSN"`
	SecretKey        string        `env:"TOKENKEEPER_SECRET_KEY"`
	SecretKeyFile    string        `env:"TOKENKEEPER_SECRET_KEY_FILE"`
	SecretKeyS3URI   string        `env:"TOKENKEEPER_SECRET_KEY_S3_URI"`
	S3RootUser       string        `env:"TOKENKEEPER_S3_USER"`
	S3RootPassword   string        `env:"TOKENKEEPER_S3_PASSWORD"`
	S3Region         string        `env:"TOKENKEEPER_S3_REGION"`
	S3BaseEndpoint   string        `env:"TOKENKEEPER_S3_ENDPOINT"`
	PasswordScheme   string        `env:"TOKENKEEPER_PASSWORD_SCHEME"`
	PBKDF2Rounds     int           `env:"TOKENKEEPER_PBKDF2_ROUNDS"`
	LogLevel         string        `env:"TOKENKEEPER_LOG_LEVEL"`
	ShutdownTimeout  time.Duration `env:"TOKENKEEPER_SHUTDOWN_TIMEOUT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "file:tokenkeeper.db?_pragma=busy_timeout(5000)"
	c.SecretKey = "some-secret-string"
	c.SecretKeyFile = ""
	c.SecretKeyS3URI = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PasswordScheme = SchemePBKDF2SHA256
	c.PBKDF2Rounds = 29000
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// the environment and finally command-line flags. Malformed input panics,
// the process cannot start without a usable configuration.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
