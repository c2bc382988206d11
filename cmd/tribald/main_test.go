package main

import (
	"os"
	"testing"

	"github.com/spf13/cobra"

	"tribald/internal/config"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("TRIBALD_TEST_KEY", "")
	if got := envOr("TRIBALD_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("TRIBALD_TEST_KEY", "set")
	if got := envOr("TRIBALD_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("got %q", got)
	}
	_ = os.Unsetenv("TRIBALD_TEST_KEY")
}

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "t"}
	cmd.Flags().String("addr", ":8080", "")
	cmd.Flags().String("db", "~/.tribald/tribald.db", "")
	cmd.Flags().String("uploads-dir", "", "")
	cmd.Flags().String("ollama-host", "", "")
	cmd.Flags().String("vision-model", "", "")
	cmd.Flags().String("translate-endpoint", "", "")
	cmd.Flags().Int("max-upload-mb", 10, "")
	cmd.Flags().Int("request-timeout-s", 120, "")
	cmd.Flags().Bool("no-cors", false, "")
	return cmd
}

func TestMergeConfigFileWinsWhenFlagUnchanged(t *testing.T) {
	cmd := newFlagCmd()
	file := config.Config{Addr: ":9000", MaxUploadMB: 4, CORSDisabled: true}
	flags := config.Config{Addr: ":8080", MaxUploadMB: 10}
	got := mergeConfig(file, flags, cmd)
	if got.Addr != ":9000" {
		t.Fatalf("addr=%q", got.Addr)
	}
	if got.MaxUploadMB != 4 {
		t.Fatalf("max upload=%d", got.MaxUploadMB)
	}
	if !got.CORSDisabled {
		t.Fatalf("cors_disabled not taken from file")
	}
}

func TestMergeConfigFlagWinsWhenSet(t *testing.T) {
	cmd := newFlagCmd()
	if err := cmd.Flags().Set("addr", ":7777"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	file := config.Config{Addr: ":9000", VisionModel: "bakllava"}
	flags := config.Config{Addr: ":7777", VisionModel: "llava"}
	got := mergeConfig(file, flags, cmd)
	if got.Addr != ":7777" {
		t.Fatalf("addr=%q", got.Addr)
	}
	// vision-model flag untouched, file value wins
	if got.VisionModel != "bakllava" {
		t.Fatalf("vision model=%q", got.VisionModel)
	}
}
