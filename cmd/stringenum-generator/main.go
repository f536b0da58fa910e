// Package main provides the CLI entrypoint for stringenum-generator.
//
// stringenum-generator is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find const and sum enums
//   - Reads variant strings from //enum: directives or a YAML file
//   - Validates the declarations and reports every problem at once
//   - Generates string, text, JSON and YAML codecs for them
package main

func main() {
	Execute()
}
