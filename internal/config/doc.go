// Package config defines the format-agnostic configuration model for the
// application, along with the core interfaces (Loader, Converter) for
// loading and interpreting grid files from a concrete format.
//
// The `config.Model` is the single source of truth for app startup: it names
// the payload bytes and the ordered list of taps (hook attachments) to wire
// onto the dispatcher. The concrete HCL implementation lives in a separate
// package.
package config
