package utils

import (
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func TestEscapeAwareRuneCountInString(t *testing.T) {
	c := color.New(color.FgBlue)
	c.EnableColor()
	s := c.Sprint("Delhi")
	if len(s) == 5 {
		t.Fatal("expected escape sequences")
	}
	if n := EscapeAwareRuneCountInString(s); n != 5 {
		t.Fatal("unexpected count", n)
	}
}

func TestPad(t *testing.T) {
	if got := RightPad("ab", 5); got != "ab   " {
		t.Fatalf("unexpected %q", got)
	}
	if got := LeftPad("ab", 5); got != "   ab" {
		t.Fatalf("unexpected %q", got)
	}
	if got := RightPad("abcdef", 3); got != "abcdef" {
		t.Fatalf("unexpected %q", got)
	}
	if got := LeftPad("°C", 4); got != "  °C" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("sunt aut facere repellat provident", 10); got != "sunt au..." {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Truncate("abcdef", 2); got != "ab" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPaths(t *testing.T) {
	home := filepath.Join("tmp", "apitour")
	if ConfigPath(home) != filepath.Join(home, "config.json") {
		t.Fatal("unexpected config path")
	}
	if DBPath(home, "main") != filepath.Join(home, "db", "main.sqlite3") {
		t.Fatal("unexpected db path")
	}
	dirs := RequiredDirs(home)
	if len(dirs) != 2 || dirs[1] != SnapshotDir(home) {
		t.Fatal("unexpected dirs", dirs)
	}
}

func TestGetHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/custom-home")
	home, err := GetHome()
	if err != nil {
		t.Fatal(err)
	}
	if home != "/tmp/custom-home" {
		t.Fatal("unexpected home", home)
	}
}
