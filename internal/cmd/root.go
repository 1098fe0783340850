// Package cmd implements the phishreport command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: phishreport <log_file> <input_file> <targets_file>"

// Version is set during build.
var Version = "dev"

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phishreport <log_file> <input_file> <targets_file>",
		Short: "Build a spreadsheet report from Evilginx captures",
		Long: `phishreport merges an Evilginx capture log with the campaign's lure roster
and an identity supplement, and writes the result to output.xlsx.

  log_file      Evilginx data file; one JSON session record per line
  input_file    identity supplement (.json array or .csv/.tsv with email,name columns)
  targets_file  lure roster; "<url> ... email=\"<address>\" ..." per line

Settings can be overridden with PHISHREPORT_* environment variables or a
.phishreport.yaml file in the working directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return NewUsageError(fmt.Sprintf("expected 3 arguments, got %d", len(args)), nil)
			}
			return nil
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := Inputs{
				LogFile:     args[0],
				InputFile:   args[1],
				TargetsFile: args[2],
			}
			return runReport(in, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewUsageError("invalid flag", err)
	})

	return cmd
}

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return reportError(cmd.Execute(), stderr)
}

// Execute runs the command against os.Args.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}
