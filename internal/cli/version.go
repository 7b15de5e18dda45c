package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/t3init/internal/manifest"
	"github.com/tacogips/t3init/internal/template/catalog"
	"github.com/tacogips/t3init/internal/template/selector"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for t3init, including the size of the
template catalog, the tRPC release it pins and the installers it runs.

Examples:
  t3init version
  t3init version --short
  t3init version --json`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show version number only")
	versionCmd.Flags().BoolVar(&versionJSON, FlagJSON, false, DescJSON)
}

// VersionInfo contains version information
type VersionInfo struct {
	Version    string   `json:"version"`
	GoVersion  string   `json:"go_version"`
	Commit     string   `json:"commit"`
	BuildDate  string   `json:"build_date"`
	OS         string   `json:"os"`
	Arch       string   `json:"arch"`
	Templates  int      `json:"templates"`
	TRPC       string   `json:"trpc"`
	Installers []string `json:"installers"`
}

func currentVersionInfo() VersionInfo {
	trpc, _ := manifest.Version("@trpc/server")
	var installers []string
	for _, in := range selector.Installers() {
		installers = append(installers, in.Name())
	}
	return VersionInfo{
		Version:    Version,
		GoVersion:  runtime.Version(),
		Commit:     GitCommit,
		BuildDate:  BuildDate,
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Templates:  len(catalog.All()),
		TRPC:       trpc,
		Installers: installers,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	return writeVersion(cmd.OutOrStdout(), currentVersionInfo(), versionShort, versionJSON)
}

func writeVersion(w io.Writer, info VersionInfo, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case asJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "t3init version %s\n", info.Version)
	fmt.Fprintf(w, "Built with: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(w, "OS/Arch: %s/%s\n", info.OS, info.Arch)
	fmt.Fprintf(w, "Templates: %d variants, tRPC %s\n", info.Templates, info.TRPC)
	fmt.Fprintf(w, "Installers: %s\n", strings.Join(info.Installers, ", "))
	return nil
}
