package cfg

import (
	"fmt"

	"ytdlproxy/internal/command/execute"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newVersionCommand prints the program version and the detected yt-dlp version.
func newVersionCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ytdlproxy and yt-dlp versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", consts.ProgramName, consts.Version)

			if path := v.GetString(keys.ConfigFile); path != "" {
				if err := loadConfigFile(v, path); err != nil {
					return err
				}
			}

			toolVersion, err := execute.ToolVersion(cmd.Context(), v.GetString(keys.YTDLPPath))
			if err != nil {
				fmt.Fprintf(out, "yt-dlp unavailable: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "yt-dlp %s\n", toolVersion)
			return nil
		},
	}
}
