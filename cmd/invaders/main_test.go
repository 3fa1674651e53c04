package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"invaders", "invaders_arcade", "breakout_invaders"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "spawn_period") {
		t.Errorf("default YAML missing spawn_period:\n%s", out)
	}
}

func TestScoresListsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, score := range []int{5, 17, -2} {
		if _, err := store.SaveRun(storage.Run{GameID: "invaders", Score: score}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	store.Close()

	out, err := execute(t, "scores", "invaders", "--db", dbPath)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "Best: 17") || !strings.Contains(out, "Runs: 3") {
		t.Errorf("unexpected scores output:\n%s", out)
	}

	out, err = execute(t, "scores", "--db", dbPath)
	if err != nil {
		t.Fatalf("scores summary: %v", err)
	}
	if !strings.Contains(out, "invaders") || !strings.Contains(out, "17") {
		t.Errorf("unexpected summary output:\n%s", out)
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := execute(t, "scores", "nope", "--db", filepath.Join(t.TempDir(), "x.db")); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

func TestSoundFlagHelpMentionsShots(t *testing.T) {
	for _, name := range []string{"play", "menu"} {
		out, err := execute(t, name, "--help")
		if err != nil {
			t.Fatalf("%s --help: %v", name, err)
		}
		if !strings.Contains(out, "--sound") || !strings.Contains(out, "each shot beeps") {
			t.Errorf("%s help should explain that shots beep:\n%s", name, out)
		}
	}
}
