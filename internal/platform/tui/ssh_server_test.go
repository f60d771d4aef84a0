package tui

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The SSH server runs on hosts without an audio device, so the package must
// not link the speaker backend.
func TestPackageDoesNotLinkSpeaker(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}

	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if strings.HasSuffix(path, "/internal/audio") || strings.HasPrefix(path, "github.com/gopxl/beep") {
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected error for unknown game")
	}
}
