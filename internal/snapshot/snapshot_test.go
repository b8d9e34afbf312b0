package snapshot

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilename(t *testing.T) {
	cases := map[[2]string]string{
		{"weather", "delhi"}:       "weather_delhi.json",
		{"weather", "New York"}:    "weather_new_york.json",
		{"crypto", " Bitcoin "}:    "crypto_bitcoin.json",
		{"crypto", "btc-bitcoin"}:  "crypto_btc-bitcoin.json",
		{"movie", "../etc/passwd"}: "movie____etc_passwd.json",
	}
	for input, expect := range cases {
		if got := Filename(input[0], input[1]); got != expect {
			t.Fatalf("%v: expected %q, got %q", input, expect, got)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "snapshots"))
	if err != nil {
		t.Fatal(err)
	}
	value := map[string]any{
		"current_weather": map[string]any{"temperature": 31.2, "weathercode": float64(3)},
		"hourly":          []any{"a", "b"},
	}
	path, err := store.Save("weather", "delhi", value)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "weather_delhi.json" || filepath.Dir(path) != store.Dir() {
		t.Fatal("unexpected path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"current_weather\"") {
		t.Fatal("expected indented JSON", string(data))
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(value, loaded); diff != "" {
		t.Fatal(diff)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save("crypto", "bitcoin", map[string]any{"price": 1.0, "name": "Bitcoin"}); err != nil {
		t.Fatal(err)
	}
	path, err := store.Save("crypto", "bitcoin", map[string]any{"price": 2.0})
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"price": 2.0}, loaded); diff != "" {
		t.Fatal(diff)
	}
}

func TestSaveUnencodable(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save("x", "y", make(chan int)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nonexistent.json")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewWithFailure(t *testing.T) {
	expect := errors.New("mocked error")
	mkdir := func(path string, perm fs.FileMode) error {
		return expect
	}
	store, err := newStore(filepath.Join("testdata", "snapshots"), mkdir)
	if !errors.Is(err, expect) {
		t.Fatal("not the error we expected", err)
	}
	if store != nil {
		t.Fatal("expected nil here")
	}
}
