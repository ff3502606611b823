package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = 8000

// ErrInvalidPort is returned when the PORT override is not a valid TCP port.
var ErrInvalidPort = errors.New("invalid port")

// Config holds process configuration resolved once at startup
type Config struct {
	Port int
}

// Addr returns the listen address for http.Server
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load builds a Config from the given environment lookup (usually os.Getenv)
func Load(getenv func(string) string) (Config, error) {
	port, err := ResolvePort(getenv("PORT"))
	if err != nil {
		return Config{}, err
	}
	return Config{Port: port}, nil
}

// ResolvePort parses a base-10 port override, defaulting to 8000 when empty.
func ResolvePort(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w %q: not a base-10 integer", ErrInvalidPort, value)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%w %q: must be between 1 and 65535", ErrInvalidPort, value)
	}
	return port, nil
}
