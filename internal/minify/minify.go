package minify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrExternalTool indicates a minifier subprocess that exited non-zero or
// could not be started.
var ErrExternalTool = errors.New("external tool failed")

// DefaultTool is the optimizer invoked when none is configured.
const DefaultTool = "scour"

// DefaultFlags is the scour flag set used when no flags are configured.
// Extra caller flags are appended after these, so scour's last-wins
// option handling lets callers override any default.
var DefaultFlags = []string{
	"--set-precision=2",
	"--strip-xml-prolog",
	"--remove-metadata",
	"--enable-id-stripping",
	"--shorten-ids",
	"--indent=none",
}

// Run feeds svgText to the minifier subprocess on stdin and returns its
// stdout. An empty tool selects DefaultTool; flags are passed through
// verbatim. Any failure to start or a non-zero exit wraps ErrExternalTool
// with the tool's stderr attached.
func Run(ctx context.Context, svgText, tool string, flags []string) (string, error) {
	if tool == "" {
		tool = DefaultTool
	}

	cmd := exec.CommandContext(ctx, tool, flags...)
	cmd.Stdin = strings.NewReader(svgText)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s: %v: %s", ErrExternalTool, tool, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.String(), nil
}
