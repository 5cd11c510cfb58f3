//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Property tests are named TestProperty_*.
const (
	propertyPattern = "^TestProperty_"
	propertyChecks  = "-rapid.checks=1000"
)

// Packages that carry rapid property tests.
var propertyPkgs = []string{"./pkg/types/", "./internal/prototype/"}

// Test groups test targets (all, unit, property).
type Test mg.Namespace

// All runs every test with the race detector.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-race", "-v", "./...")
}

// Unit runs the fast tests only.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "-short", "./...")
}

// Property runs the property tests with a larger number of checks.
func (Test) Property() error {
	args := append([]string{"test", "-v", "-run", propertyPattern}, propertyPkgs...)
	args = append(args, propertyChecks)
	return sh.RunV(binGo, args...)
}
