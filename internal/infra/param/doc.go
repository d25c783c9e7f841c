// Package param declares and validates startup configuration parameters.
//
// Parameters are declared in an explicit table of Spec values; each Spec
// names its key, whether it is required, and an ordered list of Validators:
//
//   - spec.go: Spec declaration helpers
//   - validator.go: Validator contract and string rules
//   - nodeid.go: Node ID file permission rules
//   - process.go: Process, which resolves and validates a Spec table
//   - errors.go: ParameterError and ValidationError
//
// Processing is synchronous and fails fast: the first missing required
// parameter or failed rule aborts the whole load.
package param
