// Package errors provides the classified error primitives used across stylebuilder.
//
// Every failure that crosses a package boundary is a ClassifiedError carrying a
// category, a severity, a retry hint and free-form context. The CLI adapter maps
// categories to process exit codes.
//
// Key features:
//   - ErrorCategory: broad classification (config, unsupported_input, parse, sass, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: retry hint; every category in this tool defaults to RetryNever
//   - ErrorBuilder: fluent API for creating classified errors
//
// Example usage:
//
//	err := errors.UnsupportedInputKind("styleguide", "Streams not supported").
//		WithContext("path", rec.Path).
//		Build()
package errors
