// Package config loads parcel's startup configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/parcel/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are empty, use defaults for those fields
//
// A file that exists but is not valid TOML, or that carries an unparsable
// duration, is an error.
//
// # Fields
//
//   - auth_domain: domain appended to bare user names (default xxxxxx.com)
//   - orders_file: optional TOML fixture replacing the built-in orders
//   - log_file: optional log destination; logging is discarded when unset
//   - toast_ttl: how long a toast stays up; 0 keeps it until replaced
//   - request_timeout: deadline for sign-in, order and route lookups (default 3s)
//
// Paths accept a leading ~ and are returned absolute.
package config
