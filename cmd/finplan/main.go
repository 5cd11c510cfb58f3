// Package main provides the finplan CLI.
package main

import "github.com/mesh-intelligence/finplan/internal/cli"

func main() {
	cli.Execute()
}
