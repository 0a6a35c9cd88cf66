// Package engine implements the quote-form core: the category switcher, the
// validation orchestrator, the error/status presenter contract, and the
// submission controller with its idle → validating → sending → success/error
// state machine. An Engine instance owns all mutable form state; nothing in
// this package touches ambient globals, so several forms can coexist in one
// process. A second submit while one is in flight is rejected with
// ErrSubmissionInFlight rather than queued.
package engine
