package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes args against a fresh root command and returns stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func Test_SetGetPrint(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	root.SetArgs([]string{"set", "A1", "2"})
	require.NoError(t, root.Execute())

	root.SetArgs([]string{"set", "A2", "=A1+3"})
	require.NoError(t, root.Execute())

	out.Reset()
	root.SetArgs([]string{"get", "A2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "5\n", out.String())

	out.Reset()
	root.SetArgs([]string{"print"})
	require.NoError(t, root.Execute())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2", lines[0])
	assert.Equal(t, "5", lines[1])
}

func Test_GetUnsetCell(t *testing.T) {
	out := run(t, "get", "Z9")
	assert.Equal(t, "\n", out)
}

func Test_InvalidAddress(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"get", "not-an-address"})
	assert.Error(t, root.Execute())
}

func Test_PrintPretty(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	root.SetArgs([]string{"set", "A1", "hello"})
	require.NoError(t, root.Execute())

	out.Reset()
	root.SetArgs([]string{"print", "--pretty", "--texts"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, out.String(), "A")
}
