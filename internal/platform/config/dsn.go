package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// ErrMissingDatabaseCredentials is returned when no DSN strategy produced a
// complete connection string. The service must not start in this state.
var ErrMissingDatabaseCredentials = errors.New("database credentials are missing")

// ErrInvalidDatabasePort is returned when a *_PORT variable is not a valid port.
var ErrInvalidDatabasePort = errors.New("invalid database port")

// LookupFunc reads a single environment variable.
type LookupFunc func(key string) (string, bool)

// DSNStrategy is one way of obtaining a database connection string.
// DSN reports false when the strategy has nothing complete to offer, and an
// error when what it has is malformed.
type DSNStrategy interface {
	Name() string
	DSN() (string, bool, error)
}

// DSNParts are the discrete fields a connection URL is assembled from.
type DSNParts struct {
	User     string
	Password string
	Host     string
	Port     int
	Name     string
	SSLMode  string
}

// Complete reports whether all required parts are present.
func (p DSNParts) Complete() bool {
	return p.User != "" && p.Password != "" && p.Host != "" && p.Name != ""
}

// URL assembles a postgres:// URL. The password is escaped and IPv6 hosts
// are bracketed.
func (p DSNParts) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   joinHost(p.Host, p.Port),
		Path:   "/" + p.Name,
	}

	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}

	return u.String()
}

func joinHost(host string, port int) string {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	if port > 0 {
		return net.JoinHostPort(host, strconv.Itoa(port))
	}

	// A bare IPv6 literal needs brackets; "host:port" is passed through.
	if strings.Count(host, ":") > 1 {
		return "[" + host + "]"
	}

	return host
}

type urlStrategy struct {
	name  string
	value string
}

// URLStrategy offers a full connection URL as-is.
func URLStrategy(name, value string) DSNStrategy {
	return urlStrategy{name: name, value: strings.TrimSpace(value)}
}

func (s urlStrategy) Name() string { return s.name }

func (s urlStrategy) DSN() (string, bool, error) {
	return s.value, s.value != "", nil
}

type partsStrategy struct {
	name  string
	parts DSNParts
	err   error
}

// PartsStrategy offers a URL assembled from discrete fields, only when all
// of user, password, host and name are set.
func PartsStrategy(name string, parts DSNParts) DSNStrategy {
	return partsStrategy{name: name, parts: parts}
}

func (s partsStrategy) Name() string { return s.name }

func (s partsStrategy) DSN() (string, bool, error) {
	if !s.parts.Complete() {
		return "", false, nil
	}

	if s.err != nil {
		return "", false, fmt.Errorf("%s: %w", s.name, s.err)
	}

	return s.parts.URL(), true, nil
}

// envNames lists the variables making up one discrete naming convention.
type envNames struct {
	prefix                           string
	user, password, host, name, port string
	sslmode                          string
}

var discreteEnvConventions = []envNames{
	{prefix: "POSTGRES", user: "POSTGRES_USER", password: "POSTGRES_PASSWORD", host: "POSTGRES_HOST", name: "POSTGRES_DB", port: "POSTGRES_PORT"},
	{prefix: "DB", user: "DB_USER", password: "DB_PASSWORD", host: "DB_HOST", name: "DB_NAME", port: "DB_PORT", sslmode: "DB_SSLMODE"},
	{prefix: "PG", user: "PGUSER", password: "PGPASSWORD", host: "PGHOST", name: "PGDATABASE", port: "PGPORT", sslmode: "PGSSLMODE"},
}

// envStrategy reads one naming convention. A malformed port is kept as the
// strategy's error and reported if the convention is otherwise complete.
func envStrategy(n envNames, lookup LookupFunc) DSNStrategy {
	get := func(key string) string {
		if key == "" {
			return ""
		}

		v, _ := lookup(key)

		return strings.TrimSpace(v)
	}

	port, err := parsePort(n.port, get(n.port))

	return partsStrategy{
		name: "env:" + n.prefix,
		parts: DSNParts{
			User:     get(n.user),
			Password: get(n.password),
			Host:     get(n.host),
			Port:     port,
			Name:     get(n.name),
			SSLMode:  get(n.sslmode),
		},
		err: err,
	}
}

// parsePort accepts an empty value as "no port".
func parsePort(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	port, err := strconv.Atoi(value)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDatabasePort, key, value)
	}

	return port, nil
}

// DSNStrategies returns the resolution order used at startup:
//  1. database.url from config (file or APP_DATABASE_URL)
//  2. DATABASE_URL
//  3. database.user/password/host/name from config
//  4. POSTGRES_USER/POSTGRES_PASSWORD/POSTGRES_HOST/POSTGRES_DB
//  5. DB_USER/DB_PASSWORD/DB_HOST/DB_NAME
//  6. PGUSER/PGPASSWORD/PGHOST/PGDATABASE
func (c DatabaseConfig) DSNStrategies(lookup LookupFunc) []DSNStrategy {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	databaseURL, _ := lookup("DATABASE_URL")

	strategies := []DSNStrategy{
		URLStrategy("config:database.url", c.URL),
		URLStrategy("env:DATABASE_URL", databaseURL),
		PartsStrategy("config:database", DSNParts{
			User:     c.User,
			Password: c.Password,
			Host:     c.Host,
			Port:     c.Port,
			Name:     c.Name,
			SSLMode:  c.SSLMode,
		}),
	}

	for _, n := range discreteEnvConventions {
		strategies = append(strategies, envStrategy(n, lookup))
	}

	return strategies
}

// ResolveDSN tries each strategy in order and returns the first DSN found
// together with the name of the strategy that produced it. A malformed
// strategy stops resolution rather than falling through to a later one.
func ResolveDSN(strategies ...DSNStrategy) (dsn, source string, err error) {
	tried := make([]string, 0, len(strategies))

	for _, s := range strategies {
		dsn, ok, err := s.DSN()
		if err != nil {
			return "", "", err
		}

		if ok {
			return dsn, s.Name(), nil
		}

		tried = append(tried, s.Name())
	}

	return "", "", fmt.Errorf("%w: tried %s", ErrMissingDatabaseCredentials, strings.Join(tried, ", "))
}

// ResolveDSN resolves the connection string from this config and the process environment.
func (c DatabaseConfig) ResolveDSN() (dsn, source string, err error) {
	return ResolveDSN(c.DSNStrategies(os.LookupEnv)...)
}
