// Package zap provides the go.uber.org/zap implementation of log.Logger.
//
// Logs are emitted as JSON on stderr so stdout stays reserved for the
// balance report.
package zap
