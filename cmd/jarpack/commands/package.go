package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jarpack/internal/core/domain"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	var overrides domain.PackageConfig

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Assemble the self-contained job jar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return c.app.Package(cmd.Context(), configPath, overrides)
		},
	}

	cmd.Flags().StringVar(&overrides.ProjectRoot, "project-root", "", "Project root directory (default: current directory)")
	cmd.Flags().StringVar(&overrides.ProjectName, "name", "", "Project and archive name (default: project root base name)")
	cmd.Flags().StringVar(&overrides.BuildDir, "build-dir", "", "Build output directory (default: <project root>/build)")
	cmd.Flags().StringVar(&overrides.ArchivePath, "archive", "", "Output archive path (default: <build dir>/<name>.jar)")
	cmd.Flags().StringSliceVar(&overrides.Groups, "group", nil, "Dependency groups to embed (default: default)")
	cmd.Flags().StringSliceVar(&overrides.LibJars, "lib-jar", nil, "Extra jars placed under lib/")
	cmd.Flags().StringVar(&overrides.RuntimeVersion, "jruby-version", "", "JRuby runtime version to embed")
	cmd.Flags().StringVar(&overrides.MainClass, "main-class", "", "Jar manifest main class")
	cmd.Flags().StringVar(&overrides.BridgeJarPath, "bridge-jar", "", "Bridge classes jar merged at archive root")
	cmd.Flags().StringVar(&overrides.GemManifestPath, "gem-manifest", "", "Resolved gem manifest path")

	return cmd
}
