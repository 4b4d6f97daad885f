// Package orchestrator wires the loader → scanner → form generator and the
// form reader → renderer → report writer units into caller-facing operations,
// providing dependency injection friendly helpers for consumers that prefer a
// single entry point. Each unit runs synchronously; callers that need a
// responsive control path dispatch the calls onto whatever worker mechanism
// they use.
package orchestrator
