package ui

import (
	"testing"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Teal", "Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("ThemeNames()[%d] = %q, want %q", i, names[i], name)
		}
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, GetTheme(name).Name)
		}
	}
}

func TestGetTheme_UnknownFallsBackToTeal(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Teal" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Teal (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, value := range map[string]string{
			"Background": th.Background,
			"Border":     th.Border,
			"Lyric":      th.Lyric,
			"Glow":       th.Glow,
			"Muted":      th.Muted,
			"Danger":     th.Danger,
		} {
			if value == "" {
				t.Errorf("theme %s: %s is empty", name, field)
			}
		}
	}
}
