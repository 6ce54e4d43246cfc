// Package csvio adapts the textual tabular boundary of the engine: it
// streams CSV records into ledger transactions and renders the final
// balance snapshot back to CSV.
//
// Record-level problems (unknown kind, bad id, missing amount) are typed
// RecordErrors the caller can skip; only stream-level I/O failures are fatal.
package csvio
