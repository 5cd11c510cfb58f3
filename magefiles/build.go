//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for finplan using Mage.
//
// Usage:
//
//	mage build          Compile finplan binary to bin/
//	mage test:all       Run every test
//	mage test:unit      Run tests with -short
//	mage test:property  Run the rapid property tests with more checks
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install finplan to GOPATH/bin
//	mage stats          Print Go LOC
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "finplan"
	binaryDir  = "bin"
	cmdDir     = "./cmd/finplan"
)

// Build compiles the finplan binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
