package app

import (
	"context"
	"flag"
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/spf13/cobra"

	"spotadvisor/pkg/known"
	"spotadvisor/pkg/options"
	"spotadvisor/pkg/spot_analyze/aws"
)

func NewSpotAdvisorCommand(ctx context.Context) *cobra.Command {
	opts := options.NewSpotAdvisorOptions()
	cmd := &cobra.Command{
		Use:                   "spotadvisor",
		Short:                 "suggest spot instance types least likely to be interrupted",
		Long:                  "Generate a list of spot instance suggestions based on the AWS spot advisor interruption data.",
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(ctx, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().AddGoFlagSet(flag.CommandLine)
	opts.AddFlags(cmd.Flags())
	return cmd
}

// Run fetches the advisor data once and prints either the list-mode output
// or the selected instance types.
func Run(ctx context.Context, opts *options.SpotAdvisorOptions, out io.Writer) error {
	level := hlog.LevelInfo
	if opts.Verbose {
		level = hlog.LevelDebug
	}
	hlog.SetLevel(level)
	if err := opts.Validate(); err != nil {
		return err
	}

	hlog.CtxDebugf(ctx, "loading advisor data from %s", opts.AdvisorData)
	data, err := aws.Fetch(ctx, opts.AdvisorData, opts.Timeout)
	if err != nil {
		return err
	}

	switch {
	case opts.RegionList:
		return printNames(out, data.RegionNames())
	case opts.InstanceList:
		return printNames(out, data.InstanceNames())
	}

	query := opts.Query(known.DefaultTaxonomy)
	records, err := aws.NewSelector(known.DefaultTaxonomy).Select(data, query)
	if err != nil {
		return err
	}
	hlog.CtxDebugf(ctx, "%d of %d instance types matched in %s/%s",
		len(records), len(data.InstanceTypes), query.Region, query.OS)

	return printRecords(out, records, opts.Format, opts.Pretty)
}
