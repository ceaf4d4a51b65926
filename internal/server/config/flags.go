package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tokenkeeper/internal/flagx"
)

var serverFlags = []string{"-a", "-g", "-D", "-d", "-s", "-k", "-S", "-u", "-p", "-r", "-e", "-m", "-i", "-l"}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-D string   database driver: pgx or sqlite
//	-d string   database DSN
//	-s string   token signing secret
//	-k string   file holding the token signing secret
//	-S string   s3://bucket/key of the token signing secret
//	-u string   S3 root user
//	-p string   S3 root password
//	-r string   S3 region
//	-e string   S3 base endpoint
//	-m string   password scheme: pbkdf2-sha256 or argon2id
//	-i int      PBKDF2 rounds
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port of the HTTP API")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port of the gRPC API")
	fs.StringVar(&config.DatabaseDriver, "D", config.DatabaseDriver, "database driver (pgx, sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.SecretKeyFile, "k", config.SecretKeyFile, "secret key file")
	fs.StringVar(&config.SecretKeyS3URI, "S", config.SecretKeyS3URI, "secret key S3 object (s3://bucket/key)")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.PasswordScheme, "m", config.PasswordScheme, "password hashing scheme")
	fs.IntVar(&config.PBKDF2Rounds, "i", config.PBKDF2Rounds, "PBKDF2 rounds")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
