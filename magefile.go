//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "eosconv"
)

// Default target - build the binary
var Default = Build

type (
	Lint mg.Namespace
	Test mg.Namespace
)

// Build builds the eosconv binary into bin/
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", filepath.Join(binDir, binName), "./cmd/eosconv")
}

// Install installs eosconv into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/eosconv")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binDir)
}

// QA runs formatting, vet and the test suite
func QA() {
	mg.SerialDeps(Lint.Format, Lint.Vet, Test.All)
}

// Format checks that gofmt has nothing to change
func (Lint) Format() error {
	dirs, err := sh.Output("go", "list", "-f", "{{.Dir}}", "./...")
	if err != nil {
		return err
	}
	out, err := sh.Output("gofmt", append([]string{"-l"}, strings.Fields(dirs)...)...)
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed on:\n%s", out)
	}
	return nil
}

// Vet runs go vet
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// All runs the test suite
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs the test suite with the race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage writes coverage.out and prints a per-function summary
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}
