package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name, lang, accept string
		want               language.Tag
	}{
		{"empty falls back to english", "", "", language.English},
		{"explicit turkish", "tr", "", language.Turkish},
		{"explicit wins over header", "en", "tr-TR,tr;q=0.9", language.English},
		{"accept-language regional", "", "tr-TR,tr;q=0.9,en;q=0.5", language.Turkish},
		{"unsupported language", "", "ja-JP", language.English},
		{"garbage lang param", "%%%", "tr", language.Turkish},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.lang, tc.accept)
			base, _ := got.Base()
			wantBase, _ := tc.want.Base()
			if base != wantBase {
				t.Fatalf("Resolve(%q, %q) = %v, want %v", tc.lang, tc.accept, got, tc.want)
			}
		})
	}
}

func TestLabels_Text(t *testing.T) {
	if got := For(language.Turkish).Text("overall.Critical"); got != "Kritik" {
		t.Fatalf("expected Kritik, got %q", got)
	}
	if got := For(language.English).Text("type.vaccination"); got != "Vaccination" {
		t.Fatalf("expected Vaccination, got %q", got)
	}
	if got := For(language.English).Text("missing.key"); got != "missing.key" {
		t.Fatalf("expected key passthrough, got %q", got)
	}
}

func TestSupported_DefaultFirst(t *testing.T) {
	tags := Supported()
	if len(tags) < 2 || tags[0] != language.English {
		t.Fatalf("unexpected supported tags %v", tags)
	}
}
