// Package template exposes the public contracts for loading configuration
// templates and scanning them for placeholder tokens. Implementations live
// under internal/template so the regexp and I/O details stay hidden from
// consumers.
package template
