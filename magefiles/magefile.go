//go:build mage

// Package main provides build targets for the quadra project using Mage.
//
// Usage:
//
//	mage build          Compile the quadra binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run all tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install quadra to GOPATH/bin
//	mage stats          Print Go LOC as a JSON record
package main

const (
	binGo      = "go"
	binaryName = "quadra"
	binaryDir  = "bin"
	cmdDir     = "./cmd/quadra"
	coverFile  = "coverage.out"
)
