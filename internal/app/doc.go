// Package app contains the core application logic. It wires the function
// registry with the built-in modules, owns the logger, and evaluates the
// requested expressions, independent of any specific entrypoint like a CLI.
package app
