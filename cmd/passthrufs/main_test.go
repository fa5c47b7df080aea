package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestParseArgs(t *testing.T) {
	t.Run("Positional", func(t *testing.T) {
		opts, err := parseArgs([]string{"/mnt/view/", "/srv/data"})
		if err != nil {
			t.Fatalf("parseArgs failed: %v", err)
		}
		if opts.mountPoint != "/mnt/view" || opts.sourcePath != "/srv/data" {
			t.Errorf("Unexpected paths: %+v", opts)
		}
		if opts.verbose {
			t.Error("verbose should default to false")
		}
	})

	t.Run("Flags", func(t *testing.T) {
		opts, err := parseArgs([]string{"-v", "--fuse-debug", "/mnt", "/src"})
		if err != nil {
			t.Fatalf("parseArgs failed: %v", err)
		}
		if !opts.verbose || !opts.fuseDebug {
			t.Errorf("Expected both flags set: %+v", opts)
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		if _, err := parseArgs([]string{"/mnt"}); err == nil {
			t.Error("Expected error with a single argument")
		}
	})

	t.Run("Help", func(t *testing.T) {
		if _, err := parseArgs([]string{"--help"}); err != pflag.ErrHelp {
			t.Errorf("Expected ErrHelp, got %v", err)
		}
	})
}
