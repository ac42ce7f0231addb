package main_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	main "go.etcd.io/pagesize/cmd/pagesize"
)

func TestVersionCommand_Run(t *testing.T) {
	rootCmd := main.NewRootCommand()
	outputBuf := bytes.NewBufferString("")
	rootCmd.SetOut(outputBuf)

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, outputBuf.String(), "pagesize Version: ")
}
