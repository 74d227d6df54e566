package types

import "errors"

// Supported backend names.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Defaults applied by ApplyDefaults.
const (
	DefaultBackend   = BackendCSV
	DefaultTableName = "contacts"
	DefaultPageSize  = 10
)

// Config holds backend selection and parameters for opening a Store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Table    string `json:"table" yaml:"table"`
	PageSize int    `json:"page_size" yaml:"page_size"`
}

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrTableNameEmpty  = errors.New("table name must not be empty")
	ErrPageSizeInvalid = errors.New("page size must be positive")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendCSV:    true,
	BackendSQLite: true,
}

// ApplyDefaults fills empty fields with the package defaults and returns
// the completed config.
func (c Config) ApplyDefaults() Config {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.Table == "" {
		c.Table = DefaultTableName
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	return c
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Table == "" {
		return ErrTableNameEmpty
	}
	if c.PageSize <= 0 {
		return ErrPageSizeInvalid
	}
	return nil
}
