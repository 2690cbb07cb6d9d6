// Package config stores user settings at ~/.obrakit/config.yaml through
// Viper, with OBRAKIT_* environment variables taking precedence.
package config
