package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

// runSaldo runs the CLI in-process against the config in dir and returns
// everything it printed.
func runSaldo(t *testing.T, dir string, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "saldo.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}
