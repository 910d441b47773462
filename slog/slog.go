// Package slog provides log/slog decorators for outline services.
package slog
