package driven

// ConfigStore provides read access to application configuration.
// Keys use dotted paths into the underlying TOML tables, e.g.
// "database.path" or "litdb.command".
type ConfigStore interface {
	// GetString retrieves a string value, "" when absent.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 when absent.
	GetInt(key string) int

	// GetBool retrieves a boolean value, false when absent.
	GetBool(key string) bool

	// Path returns the backing file path.
	Path() string
}
