package cmd

import (
	"fmt"

	"github.com/ostafen/magicid/internal/env"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const versionTemplate = "{{.Name}}\nVersion:    {{.Version}}\nCommit:     %s\nBuild Time: %s\n"

func Execute() error {
	return DefineRootCommand(afero.NewOsFs()).Execute()
}

func DefineRootCommand(fsys afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName + " [flags] [file ...]",
		Short: env.AppName + " - identify files by their magic numbers",
		Long: `Identify the format of each file by matching its leading bytes against a table of known
binary signatures. When several signatures match, the longest one wins.
Custom signatures can be layered over the built-in table with --add.`,
		Version: env.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunDetect(cmd, args, fsys)
		},
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, env.CommitHash, env.BuildTime))

	rootCmd.Flags().BoolP("json", "j", false, "output results in JSON format")
	rootCmd.Flags().BoolP("list", "l", false, "list all known magic numbers")
	rootCmd.Flags().StringArray("add", nil, "add a custom magic number in the form HEX:NAME (can repeat)")
	rootCmd.Flags().Int("workers", 1, "number of files probed concurrently")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("log-level", "WARN", "log level (DEBUG, INFO, WARN, ERROR)")

	return rootCmd
}
