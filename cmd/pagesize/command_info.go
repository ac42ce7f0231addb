package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.etcd.io/pagesize"
)

type infoOptions struct {
	raw bool
}

func newInfoCommand() *cobra.Command {
	var opt infoOptions
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Info prints the page size and allocation granularity of this system.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return infoFunc(cmd, opt)
		},
	}
	opt.AddFlags(infoCmd.Flags())

	return infoCmd
}

func (o *infoOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.raw, "raw", false, "Print the two values as bare numbers on one line.")
}

func infoFunc(cmd *cobra.Command, cfg infoOptions) error {
	if cfg.raw {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", pagesize.Get(), pagesize.GetGranularity())
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Page Size: %d\n", pagesize.Get())
	fmt.Fprintf(cmd.OutOrStdout(), "Allocation Granularity: %d\n", pagesize.GetGranularity())
	return nil
}
