// Package logger provides a thin factory over Go's slog package with
// functional options for configuration and helper attribute constructors, so
// every binary in the module configures structured logging the same way.
//
// The single entry point is New, which builds a *slog.Logger from a set of
// Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Name the service emitting the logs
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("fsmdemo"),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("machine stopped",
//	        logger.Component("fsm"),
//	        logger.Event("stop"),
//	    )
//	}
//
// Helper constructors such as Error, Component and Event live in attr.go and
// keep attribute naming consistent across the codebase.
package logger
