package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if _, ok := themes[name]; !ok {
			t.Fatalf("ThemeNames() lists %q with no definition", name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Slate":    "Nightfox",
		"Nightfox": "Kanagawa",
		"Kanagawa": "Slate",
		"Unknown":  "Slate",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %s", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q, want Kanagawa", got)
	}
	if got := GetTheme("Unknown").Name; got != "Slate" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Slate (fallback)", got)
	}
}

func TestSlideStyle_CyclesShades(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	shades := slateTheme().SlideShades

	for i := 0; i < 2*len(shades); i++ {
		got := styles.SlideStyle(i).GetBackground()
		want := styles.SlideStyle(i % len(shades)).GetBackground()
		if got != want {
			t.Fatalf("SlideStyle(%d) background = %v, want %v", i, got, want)
		}
	}

	empty := Theme{Muted: "#888888"}.Styles()
	if got := empty.SlideStyle(3).GetBackground(); got == nil {
		t.Fatalf("SlideStyle without shades has no background")
	}
}
