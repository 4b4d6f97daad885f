// Package model re-exports the rendered-line and token-set types shared by
// scanners, renderers, and writers. Implementations live under internal/model
// to keep the public surface small.
package model
