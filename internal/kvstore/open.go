package kvstore

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Backends lists every supported backend name.
var Backends = []string{BackendMemory, BackendFile, BackendSQLite, BackendRedis, BackendPostgres}

// Options selects and configures a backend.
type Options struct {
	Backend     string
	DataDir     string // file and sqlite
	RedisURL    string
	RedisPrefix string
	DatabaseURL string
	Fs          afero.Fs // file backend; defaults to the OS filesystem
}

// Open builds the backend named by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		fs := opts.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewFile(fs, opts.DataDir)
	case BackendSQLite:
		return OpenSQLite(opts.DataDir)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.RedisPrefix)
	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires a database URL")
		}
		return ConnectPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
