// Package logger provides structured logging for FindCare using zerolog.
//
// It supports JSON and console output, an optional append-only log file
// that is teed alongside the console stream, and component-scoped
// sub-loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  file: "logs/findcare.log"
//
// # Usage
//
//	log := logger.NewFromEnv("findcare").WithComponent("server")
//	log.Info("listener bound", map[string]interface{}{"addr": addr})
package logger
