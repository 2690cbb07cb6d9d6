package estructura

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheck_CompleteStructure(t *testing.T) {
	tmp := t.TempDir()

	var gen bytes.Buffer
	if _, err := Generate(&gen, tmp, "Torre"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, tmp, "Torre", false); err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "[MISS]") || strings.Contains(out, "[FAIL]") {
		t.Errorf("complete structure reported problems:\n%s", out)
	}
}

func TestCheck_MissingRoot(t *testing.T) {
	tmp := t.TempDir()

	var buf bytes.Buffer
	if err := Check(&buf, tmp, "Torre", false); err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Error("expected [MISS] for absent project root")
	}
}

func TestCheck_FixRecreatesMissing(t *testing.T) {
	tmp := t.TempDir()

	var gen bytes.Buffer
	if _, err := Generate(&gen, tmp, "Torre"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	removed := filepath.Join(tmp, "Torre", "07TorreFotos")
	if err := os.Remove(removed); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Check(&buf, tmp, "Torre", true); err != nil {
		t.Fatalf("Check --fix failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[FIX ]") {
		t.Error("expected [FIX ] message")
	}
	assertDirExists(t, removed)
}

func TestCheck_RootIsFile(t *testing.T) {
	tmp := t.TempDir()

	// A regular file occupies the project root path.
	if err := os.WriteFile(filepath.Join(tmp, "Torre"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Check(&buf, tmp, "Torre", false)
	if !errors.Is(err, ErrPathConflict) {
		t.Fatalf("Check error = %v, want ErrPathConflict", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[FAIL]") {
		t.Error("expected [FAIL] for file on project root")
	}
	if strings.Contains(out, "[ OK ]") {
		t.Errorf("conflicting root reported healthy:\n%s", out)
	}
}

func TestCheck_ParentIsFile(t *testing.T) {
	tmp := t.TempDir()

	var gen bytes.Buffer
	if _, err := Generate(&gen, tmp, "Torre"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Replace the Gremios folder with a regular file; its seven guild
	// subfolders now sit behind a non-directory.
	gremios := filepath.Join(tmp, "Torre", "06Torre_Gremios")
	if err := os.RemoveAll(gremios); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(gremios, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Check(&buf, tmp, "Torre", false)
	if err == nil {
		t.Fatal("expected error for file on parent path")
	}
	if !strings.Contains(buf.String(), "a parent path is not a directory") {
		t.Errorf("guild paths behind the file not reported as conflicts:\n%s", buf.String())
	}
	// The Gremios entry itself plus its seven guilds.
	if !strings.Contains(err.Error(), "8 path(s)") {
		t.Errorf("error = %v, want 8 conflicting paths", err)
	}
}

func TestCheck_ReportsConflict(t *testing.T) {
	tmp := t.TempDir()

	var gen bytes.Buffer
	if _, err := Generate(&gen, tmp, "Torre"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	victim := filepath.Join(tmp, "Torre", "08TorreCalidad")
	if err := os.Remove(victim); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(victim, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err := Check(&buf, tmp, "Torre", false)
	if err == nil {
		t.Fatal("expected error for conflicting path")
	}
	if !strings.Contains(buf.String(), "[FAIL]") {
		t.Error("expected [FAIL] for non-directory path")
	}
}
