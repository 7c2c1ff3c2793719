// Package testgen synthesizes the three test suites of the stream
// X-machine testing method: conformance (W-method) tests via Logic,
// input-completeness tests via Robustness, and data-path coverage tests
// via Coverage.
//
// All generators are pure functions of the machine contract. Regenerating
// any suite from an unchanged model yields an identical ordered result:
// iteration follows the model's enumerations, never map order.
package testgen
