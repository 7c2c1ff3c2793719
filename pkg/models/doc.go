// Package models ships the reference machines used by the CLI, the HTTP
// adapter and the test suites: a digicode keypad accumulating a secret
// code in memory and a sliding door counting how often it opened. The two
// compose into a secure-door system via the conversion functions in
// convert.go.
package models
