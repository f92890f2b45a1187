package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const cliOBO = `format-version: 1.2

[Term]
id: T:1
name: root

[Term]
id: T:2
name: left
is_a: T:1

[Term]
id: T:3
name: right
is_a: T:1

[Term]
id: T:4
name: shared leaf
is_a: T:2
is_a: T:3
`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.obo")
	require.NoError(t, os.WriteFile(path, []byte(cliOBO), 0o644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--file", path))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRootsCommand(t *testing.T) {
	require.Equal(t, "T:1\n", runCLI(t, "roots"))
}

func TestPathCommand(t *testing.T) {
	require.Equal(t, "T:1 -> T:2 -> T:4\n", runCLI(t, "path", "T:4", "T:1"))
}

func TestLCACommand(t *testing.T) {
	// T:4's nearest ancestors are both of its parents.
	require.Equal(t, "T:2\nT:3\n", runCLI(t, "lca", "T:4"))
	// Across all three, only the root is shared.
	require.Equal(t, "T:1\n", runCLI(t, "lca", "T:2", "T:3", "T:4"))
}

func TestTrajectoriesTreeCommand(t *testing.T) {
	want := "" +
		"T:1: root (distance=-2)\n" +
		"├── T:2: left (distance=-1)\n" +
		"│   └── T:4: shared leaf (distance=0)\n" +
		"└── T:3: right (distance=-1)\n" +
		"    └── T:4: shared leaf (distance=0)\n"
	require.Equal(t, want, runCLI(t, "trajectories", "T:4", "--tree"))
}
