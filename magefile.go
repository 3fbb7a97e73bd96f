//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the preview binary
var Default = Build

// Build builds the glimpse preview binary into bin/.
func Build() error {
	if err := os.MkdirAll("bin", 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", "bin/glimpse", "./cmd/glimpse")
}

// Test runs the test suite with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// QA runs all quality assurance checks.
func QA() error {
	mg.Deps(Test)

	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}

	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("staticcheck not clean (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}
