// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that should implement the `module.Module` interface.
// Modules are listed in `internal/app/modules.go`, register their services with the
// container and are booted by the server at startup.
package modules
