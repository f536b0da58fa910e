// Package plan turns generation requests into validated enum specs
// consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze packages → type graph
//  2. Load YAML (optional) → validate → requests
//  3. Add requests for types named on the command line
//  4. For each request:
//     - Find the declaration, suggesting close names when it is missing
//     - Replace directives with YAML labels
//     - Build and validate the enum spec
//     - Check custom-mode prerequisites and generated name clashes
//  5. Emit diagnostics (errors abort only the affected declaration)
package plan
