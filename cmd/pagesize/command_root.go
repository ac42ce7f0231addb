package main

import (
	"github.com/spf13/cobra"
)

const (
	cliName        = "pagesize"
	cliDescription = "A simple command line tool for inspecting the system's memory page geometry"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     cliName,
		Short:   cliDescription,
		Version: "dev",
	}

	rootCmd.AddCommand(
		newInfoCommand(),
		newVersionCommand(),
	)

	return rootCmd
}
