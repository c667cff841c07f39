// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// JWTSecret is the key used to sign and verify access tokens.
	// The server refuses to start without it.
	JWTSecret string

	// JWTExpirySeconds is the access token lifetime in seconds.
	JWTExpirySeconds int

	// BcryptCost is the cost factor used when hashing passwords.
	BcryptCost int

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.JWTSecret, "s", "", "token signing key")
	flag.IntVar(&options.JWTExpirySeconds, "e", 3600, "token lifetime in seconds")
	flag.IntVar(&options.BcryptCost, "b", 10, "bcrypt cost factor")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	if expiry := os.Getenv("JWT_EXPIRY"); expiry != "" {
		seconds, err := strconv.Atoi(expiry)
		if err != nil {
			log.Fatalf("invalid JWT_EXPIRY value %q: %v", expiry, err)
		}
		options.JWTExpirySeconds = seconds
	}

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		c, err := strconv.Atoi(cost)
		if err != nil {
			log.Fatalf("invalid BCRYPT_COST value %q: %v", cost, err)
		}
		options.BcryptCost = c
	}

	return options
}
