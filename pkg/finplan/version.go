// Package finplan holds module-level metadata for the finplan tool.
package finplan

// Version is the finplan release version.
const Version = "0.1.0"

// ModulePath is the Go module path printed by the version command.
const ModulePath = "github.com/mesh-intelligence/finplan"
