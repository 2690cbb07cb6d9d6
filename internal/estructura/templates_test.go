package estructura

import (
	"path/filepath"
	"testing"
)

// The folder names are contractual: each one must match its literal
// template exactly, separator quirks included.
func TestResolveNames_Torre(t *testing.T) {
	want := []string{
		"00_TorreDatos",
		"01TorreUdala",
		"02TorreGrafico",
		"03TorreProyecto",
		"04TorreSeguridad",
		"05TorrePrest",
		"06Torre_Gremios",
		"Torre_JAIZKIBEL",
		"Torre_SALTOKI",
		"Torre_TERMALDE",
		"Torre_ZERTIQ",
		"Torre_PINTOR",
		"Torre_CRISTALERIA",
		"TorreCARPINTERIA",
		"07TorreFotos",
		"08TorreCalidad",
		"09Torre_Residuos",
	}

	got := ResolveNames("Torre")
	if len(got) != len(want) {
		t.Fatalf("ResolveNames returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTemplates_TableShape(t *testing.T) {
	if len(Templates) != 17 {
		t.Fatalf("Templates has %d entries, want 17", len(Templates))
	}

	topLevel, guilds := 0, 0
	for i, tpl := range Templates {
		switch tpl.Parent {
		case NoParent:
			topLevel++
			if tpl.Prefix == "" {
				t.Errorf("top-level entry %d has no numeric prefix", i)
			}
		case gremiosIndex:
			guilds++
			if tpl.Prefix != "" {
				t.Errorf("guild entry %d has a numeric prefix %q", i, tpl.Prefix)
			}
		default:
			t.Errorf("entry %d has unexpected parent %d", i, tpl.Parent)
		}
	}
	if topLevel != 10 {
		t.Errorf("table has %d top-level entries, want 10", topLevel)
	}
	if guilds != 7 {
		t.Errorf("table has %d guild entries, want 7", guilds)
	}

	if Templates[gremiosIndex].Prefix != "06" {
		t.Errorf("gremiosIndex points at prefix %q, want 06", Templates[gremiosIndex].Prefix)
	}
}

func TestRelativePaths_GuildNesting(t *testing.T) {
	paths := RelativePaths("Torre")

	wantFirst := filepath.Join("Torre", "00_TorreDatos")
	if paths[0] != wantFirst {
		t.Errorf("paths[0] = %q, want %q", paths[0], wantFirst)
	}

	wantGuild := filepath.Join("Torre", "06Torre_Gremios", "Torre_JAIZKIBEL")
	if paths[7] != wantGuild {
		t.Errorf("paths[7] = %q, want %q", paths[7], wantGuild)
	}

	wantLast := filepath.Join("Torre", "09Torre_Residuos")
	if paths[len(paths)-1] != wantLast {
		t.Errorf("last path = %q, want %q", paths[len(paths)-1], wantLast)
	}
}
