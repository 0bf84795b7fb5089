package indent

import "fmt"

// ConfigError is the error returned when a writer is constructed with
// a missing or invalid option.
type ConfigError struct {
	Option  string
	Message string
}

// Error returns the human readable representation of a config error.
func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Message)
}
