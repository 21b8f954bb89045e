package minify

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestRun_PassesStdinToStdout(t *testing.T) {
	requireTool(t, "cat")

	const svg = `<svg xmlns="http://www.w3.org/2000/svg"/>`
	out, err := Run(context.Background(), svg, "cat", nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out != svg {
		t.Errorf("output: got %q, want input unchanged", out)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	requireTool(t, "false")

	_, err := Run(context.Background(), "<svg/>", "false", nil)
	if !errors.Is(err, ErrExternalTool) {
		t.Errorf("error: got %v, want ErrExternalTool", err)
	}
}

func TestRun_MissingTool(t *testing.T) {
	_, err := Run(context.Background(), "<svg/>", "definitely-not-a-real-tool-xyz", nil)
	if !errors.Is(err, ErrExternalTool) {
		t.Errorf("error: got %v, want ErrExternalTool", err)
	}
}

func TestDefaultFlags(t *testing.T) {
	// The default set must strip the prolog and IDs; a regression here
	// silently bloats every pipeline output.
	want := map[string]bool{
		"--strip-xml-prolog":    false,
		"--enable-id-stripping": false,
	}
	for _, f := range DefaultFlags {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("default flags missing %s", f)
		}
	}
}
