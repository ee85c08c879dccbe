// Package database opens the stores paretofocus persists to.
package database

import "strings"

// Driver names a storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
	DriverMemory   Driver = "memory"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// IsValid reports whether d is a known backend.
func (d Driver) IsValid() bool {
	switch d {
	case DriverSQLite, DriverPostgres, DriverRedis, DriverMemory:
		return true
	default:
		return false
	}
}

// DetectDriver infers the backend from a connection string.
// An empty URL means the local SQLite file.
func DetectDriver(url string) Driver {
	switch {
	case url == "":
		return DriverSQLite
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return DriverRedis
	case url == "memory", url == "memory://":
		return DriverMemory
	default:
		return DriverSQLite
	}
}

// ResolveDriver returns the explicitly requested driver, falling back to
// detection from url when the name is empty or "auto".
func ResolveDriver(name, url string) Driver {
	d := Driver(strings.ToLower(strings.TrimSpace(name)))
	if d == "" || d == "auto" {
		return DetectDriver(url)
	}
	return d
}
