package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	dbFlag := root.PersistentFlags().Lookup("db")
	if dbFlag == nil {
		t.Fatal("expected --db flag to exist")
	}

	legacyFlag := root.PersistentFlags().Lookup("legacy-url-encoding")
	if legacyFlag == nil {
		t.Fatal("expected --legacy-url-encoding flag to exist")
	}
	if legacyFlag.DefValue != "false" {
		t.Errorf("expected --legacy-url-encoding default 'false', got %q", legacyFlag.DefValue)
	}
}

func TestShowRequiresKey(t *testing.T) {
	_, err := executeCommand("show")
	if err == nil {
		t.Fatal("expected error when no key provided")
	}
}

func TestTenantRequiresThreeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{"tenant"}},
		{"one arg", []string{"tenant", "IL|Springfield|Main St|123|4"}},
		{"two args", []string{"tenant", "IL|Springfield|Main St|123|4", "Dana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if err == nil {
				t.Fatal("expected args error")
			}
		})
	}
}

func TestCornerRequiresThreeArgs(t *testing.T) {
	_, err := executeCommand("corner", "Dana", "kitchen")
	if err == nil {
		t.Fatal("expected args error")
	}
}

func TestProblemRequiresDescription(t *testing.T) {
	_, err := executeCommand("problem", "Dana", "images/abc.png")
	if err == nil {
		t.Fatal("expected args error")
	}
}

func TestVersionCommand(t *testing.T) {
	_, err := executeCommand("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
