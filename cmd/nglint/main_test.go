// Package main provides tests for the nglint CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/nglint/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "nglint") {
		t.Errorf("version output should contain 'nglint', got: %s", output)
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("--version error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "nglint "+cli.Version) {
		t.Errorf("--version output = %q", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expected := []string{"rules", "init", "version", "completion", "--severity-threshold", "--watch", "Exit codes"}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("help output should contain '%s', got: %s", want, output)
		}
	}
}
