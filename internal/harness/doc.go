// Package harness runs conversion conformance scenarios.
//
// A scenario is a YAML file describing a sequence of conversion steps
// (encode, batch encode, decode, translate, detect) with their inputs.
// The harness executes every step through the public API, records each
// outcome — including error codes, which are part of the contract —
// and compares the full result snapshot against a golden file.
//
// Golden files are the source of truth for conversion behavior.
// Regenerate them after an intentional change with:
//
//	go test ./internal/harness -update
package harness
