package main_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	main "go.etcd.io/pagesize/cmd/pagesize"
)

// Ensure the "info" command prints both labeled values.
func TestInfoCommand_Run(t *testing.T) {
	rootCmd := main.NewRootCommand()
	outputBuf := bytes.NewBufferString("")
	rootCmd.SetOut(outputBuf)

	rootCmd.SetArgs([]string{"info"})
	require.NoError(t, rootCmd.Execute())

	output := outputBuf.String()
	require.Contains(t, output, "Page Size: ")
	require.Contains(t, output, "Allocation Granularity: ")
}

// Ensure --raw emits two parseable, sane numbers.
func TestInfoCommand_Raw(t *testing.T) {
	rootCmd := main.NewRootCommand()
	outputBuf := bytes.NewBufferString("")
	rootCmd.SetOut(outputBuf)

	rootCmd.SetArgs([]string{"info", "--raw"})
	require.NoError(t, rootCmd.Execute())

	fields := strings.Fields(outputBuf.String())
	require.Len(t, fields, 2)

	sz, err := strconv.Atoi(fields[0])
	require.NoError(t, err)
	gran, err := strconv.Atoi(fields[1])
	require.NoError(t, err)

	require.Positive(t, sz)
	require.GreaterOrEqual(t, gran, sz)
}

func TestInfoCommand_RejectsArgs(t *testing.T) {
	rootCmd := main.NewRootCommand()
	rootCmd.SetArgs([]string{"info", "extra"})
	require.Error(t, rootCmd.Execute())
}
