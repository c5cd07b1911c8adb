// Package config loads mazeflood settings from a TOML file, then lets the
// environment and a dotenv file override the handful of values that change
// between runs.
package config
