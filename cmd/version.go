package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected through ldflags
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

// currentVersion parses the build version; dev builds have none
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("build version %q is not a release: %w", version, err)
	}
	return v, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeLogger,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if v, err := currentVersion(); err == nil {
			fmt.Fprintf(out, "myshows v%s\n", v)
		} else {
			fmt.Fprintf(out, "myshows %s\n", version)
		}
		fmt.Fprintf(out, "Built:   %s\n", buildTime)
		fmt.Fprintf(out, "Go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
