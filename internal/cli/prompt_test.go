package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/obrakit-labs/obrakit/internal/estructura"
)

func TestPromptProjectName(t *testing.T) {
	var out bytes.Buffer
	name, err := promptProjectName(strings.NewReader("Torre\n"), &out)
	if err != nil {
		t.Fatalf("promptProjectName failed: %v", err)
	}
	if name != "Torre" {
		t.Errorf("name = %q, want Torre", name)
	}
	if !strings.Contains(out.String(), "Introduce el nombre del proyecto") {
		t.Error("prompt text not written")
	}
}

func TestPromptProjectName_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	name, err := promptProjectName(strings.NewReader("  Torre  \n"), &out)
	if err != nil {
		t.Fatalf("promptProjectName failed: %v", err)
	}
	if name != "Torre" {
		t.Errorf("name = %q, want Torre", name)
	}
}

func TestPromptProjectName_NoTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	name, err := promptProjectName(strings.NewReader("Torre"), &out)
	if err != nil {
		t.Fatalf("promptProjectName failed: %v", err)
	}
	if name != "Torre" {
		t.Errorf("name = %q, want Torre", name)
	}
}

func TestPromptProjectName_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", "\n"},
		{"whitespace", "   \n"},
		{"eof", ""},
		{"separator", "a/b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := promptProjectName(strings.NewReader(tt.input), &out)
			if !errors.Is(err, estructura.ErrInvalidName) {
				t.Errorf("error = %v, want ErrInvalidName", err)
			}
		})
	}
}
