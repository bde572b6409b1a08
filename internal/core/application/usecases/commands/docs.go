// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, handler
// validation, then mutation through the repository ports.
package commands
