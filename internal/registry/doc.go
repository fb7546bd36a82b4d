// Package registry provides the central "glue" for the hook module system.
//
// The Registry stores mappings between the hook kind names used in grid
// files (e.g. "print") and the compiled Go handlers that implement them.
// During application startup the registry is populated by modules and then
// validated, so that a mismatch between Go code and configuration surfaces
// before anything is dispatched.
package registry
