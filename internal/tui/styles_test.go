package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitializeSkin_CustomFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skins", "ocean.yml"), []byte("name: ocean\naccent: \"33\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = InitializeSkin("default", "") })

	if err := InitializeSkin("ocean", dir); err != nil {
		t.Fatalf("InitializeSkin: %v", err)
	}
	if ColorAccent != lipgloss.Color("33") {
		t.Fatalf("accent = %q, want 33", ColorAccent)
	}
	// Unset colours fall back to the default skin.
	if ColorRed != lipgloss.Color(builtinSkins["default"].Error) {
		t.Fatalf("error colour = %q", ColorRed)
	}
}

func TestInitializeSkin_Missing(t *testing.T) {
	t.Cleanup(func() { _ = InitializeSkin("default", "") })

	if err := InitializeSkin("nope", t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing skin")
	}
	if ColorAccent != lipgloss.Color(builtinSkins["default"].Accent) {
		t.Fatal("missing skin should fall back to the default")
	}
}
