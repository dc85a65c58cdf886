// Package logging provides slog-based logger construction for the
// agent and its libraries.
//
// Library packages accept a *slog.Logger and fall back to Nop when
// given nil, so embedding hosts that disable logging pay nothing.
package logging
