package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
// It exits the process on a malformed flag, like [flag.Parse].
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlags(flag.CommandLine, os.Args[1:])
	return cfg
}

// parseFlags registers every configuration flag on fs and parses args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres://... or sqlite://...)
//	-c/-config json file path with configs
//	-env deployment environment (development, production)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-password-hash-cost bcrypt cost
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level (debug, info, warn, error)
//	-disable-demo-seed do not seed demonstration assessments
//	-bootstrap upsert the bootstrap account at startup
//	-bootstrap-only upsert the bootstrap account and exit
//	-server-url API base URL used by the client
//	-email login email used by the client
//	-password login password used by the client
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var env string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var passwordHashCost int
	var requestTimeout time.Duration
	var logLevel string
	var disableDemoSeed bool
	var bootstrap bool
	var bootstrapOnly bool
	var serverURL string
	var email string
	var password string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&env, "env", "", "Deployment environment (development, production)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost for new password hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&disableDemoSeed, "disable-demo-seed", false, "Do not seed demonstration assessments")
	fs.BoolVar(&bootstrap, "bootstrap", false, "Upsert the bootstrap account at startup")
	fs.BoolVar(&bootstrapOnly, "bootstrap-only", false, "Upsert the bootstrap account and exit")
	fs.StringVar(&serverURL, "server-url", "", "API base URL used by the client")
	fs.StringVar(&email, "email", "", "Login email used by the client")
	fs.StringVar(&password, "password", "", "Login password used by the client")

	if err := fs.Parse(args); err != nil {
		return &StructuredConfig{}, err
	}

	return &StructuredConfig{
		App: App{
			Env:              env,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			LogLevel:         logLevel,
			DisableDemoSeed:  disableDemoSeed,
			Bootstrap: Bootstrap{
				Enabled: bootstrap,
				Only:    bootstrapOnly,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
			Email:          email,
			Password:       password,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
