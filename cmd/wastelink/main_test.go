package main

import (
	"testing"

	"github.com/nmehta6/wastelink/internal/cli"
	"github.com/nmehta6/wastelink/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		if version.GetVersion() == "" {
			t.Error("expected version to be non-empty")
		}
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		if root.Use != "wastelink" {
			t.Errorf("expected root command use %q, got %q", "wastelink", root.Use)
		}
	})

	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}
