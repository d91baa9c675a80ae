package placer

import (
	"fmt"
	"os"

	"github.com/arthur-debert/placer/internal/version"
	"github.com/arthur-debert/placer/pkg/config"
	"github.com/arthur-debert/placer/pkg/core"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/output"
	"github.com/arthur-debert/placer/pkg/rpm"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: MsgPlanShort,
		Long:  MsgPlanLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			planOpts, err := opts.planOptions(cmd)
			if err != nil {
				return err
			}

			result, err := core.Plan(cmd.Context(), planOpts)
			if err != nil {
				return err
			}

			return opts.renderer(cmd, f).RenderPlan(result)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(output.FormatText), MsgFlagFormat)
	return cmd
}

func newRpmFilesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rpm-files",
		Short: MsgRpmFilesShort,
		Long:  MsgRpmFilesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planOpts, err := opts.planOptions(cmd)
			if err != nil {
				return err
			}

			result, err := core.Plan(cmd.Context(), planOpts)
			if err != nil {
				return err
			}

			return rpm.Write(cmd.OutOrStdout(), result.Targets(), result.Scope)
		},
	}
}

func newDirsCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dirs",
		Short: MsgDirsShort,
		Long:  MsgDirsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			planOpts, err := opts.planOptions(cmd)
			if err != nil {
				return err
			}

			d, err := core.ResolveDirs(planOpts)
			if err != nil {
				return err
			}

			return opts.renderer(cmd, f).RenderDirs(planOpts.Scope, d)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(output.FormatText), MsgFlagFormat)
	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.man")
			header := &doc.GenManHeader{
				Title:   "PLACER",
				Section: "1",
				Source:  "placer " + version.Version,
				Manual:  "placer manual",
			}

			if dir == "" {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			logger.Info().Str("dir", dir).Msg("Writing man pages")
			return doc.GenManTree(cmd.Root(), header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagManDir)
	return cmd
}
