// Package config handles configuration loading, parsing, and validation
// from environment variables. It provides type-safe access to the logging
// and scheduler settings while keeping configuration details separate from
// the capture and task packages.
package config
