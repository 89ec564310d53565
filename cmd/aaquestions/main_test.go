package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/saltyorg/aaquestions/internal/database"
	"github.com/saltyorg/aaquestions/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	a := &app{}
	cmd := newRootCmd(a)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if closeErr := a.close(); closeErr != nil {
		t.Fatalf("close: %v", closeErr)
	}
	return out.String(), err
}

func TestQuestionCommand_PrintsThread(t *testing.T) {
	path := testutil.FixtureStore(t)

	out, err := run(t, "--db", path, "question", "1")
	if err != nil {
		t.Fatalf("question: %v", err)
	}

	for _, want := range []string{
		"Question 1: What is a closure?",
		"by Ada Lovelace, 3 likes, 5 followers",
		"Replies (4)",
		"      #3 Yes, by reference.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUserCommand(t *testing.T) {
	path := testutil.FixtureStore(t)

	out, err := run(t, "--db", path, "user", "1")
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	for _, want := range []string{"User 1: Ada Lovelace", "Questions (2)", "Liked (1)", "Following (2)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUserCommand_NotFound(t *testing.T) {
	path := testutil.FixtureStore(t)

	_, err := run(t, "--db", path, "user", "999")
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTopCommand(t *testing.T) {
	path := testutil.FixtureStore(t)

	out, err := run(t, "--db", path, "top", "1")
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if !strings.Contains(out, "top count 5") || !strings.Contains(out, "#1 What is a closure?") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "--db", path, "top", "0"); err == nil {
		t.Fatal("expected error for n=0")
	}
}

func TestMissingStore(t *testing.T) {
	_, err := run(t, "--db", t.TempDir()+"/missing.db", "top")
	if err == nil {
		t.Fatal("expected error for missing store")
	}
}

func TestSetup_KeepsRotationSettings(t *testing.T) {
	t.Setenv("AAQ_LOG_MAX_BACKUPS", "7")
	t.Setenv("AAQ_LOG_COMPRESS", "false")

	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}

	if a.loader == nil {
		t.Fatal("expected setup to keep the settings loader for serve")
	}
	if got := a.loader.Int("log.max.backups", 3); got != 7 {
		t.Fatalf("log.max.backups = %d, want 7", got)
	}
	if a.loader.Bool("log.compress", true) {
		t.Fatal("expected log.compress to be false")
	}
}
