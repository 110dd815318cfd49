package configs

import "strings"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects the repository implementation. "memory" keeps all data
// in process and is meant for local development.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Normalized returns the driver name, falling back to postgres.
func (c Storage) Normalized() string {
	if strings.ToLower(c.Driver) == StorageMemory {
		return StorageMemory
	}
	return StoragePostgres
}
