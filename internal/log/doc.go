// Package log defines the logging interface and typed logging fields.
//
// Adapters (such as the zap package) implement Logger so the engine can keep
// logging calls consistent across backends, and tests can plug in NewNop.
package log
