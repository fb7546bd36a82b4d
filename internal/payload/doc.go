// Package payload defines the immutable byte payload owned by a dispatcher
// and the read-only View handed to hooks. A Payload is copied on construction
// and never mutates; a View exposes the bytes without granting write access.
package payload
