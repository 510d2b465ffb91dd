// Package services implements the driving ports.
//
// Services orchestrate domain logic by calling driven ports. They hold no
// vendor knowledge: providers, files and the console are reached only
// through interfaces from internal/core/ports/driven.
//
// # Import Rules
//
//   - Can Import: domain, ports/driven, ports/driving, logger
//   - Cannot Import: Any adapter or provider package
package services
