// Package main provides the quadra CLI.
package main

import "github.com/mesh-intelligence/quadra/internal/cli"

func main() {
	cli.Execute()
}
