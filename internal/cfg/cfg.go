// Package cfg provides configuration and command-line interface setup for ytdlproxy.
package cfg

import (
	"context"
	"fmt"
	"strings"

	"ytdlproxy/internal/domain/consts"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ServeFunc runs the service with the loaded configuration until ctx is cancelled.
type ServeFunc func(ctx context.Context, c *Config) error

// NewRootCommand builds the ytdlproxy root command.
//
// Running it without a subcommand loads the configuration and hands it to serve.
func NewRootCommand(serve ServeFunc) (*cobra.Command, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           consts.ProgramName,
		Short:         "ytdlproxy downloads media with yt-dlp and streams it back over HTTP.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), c)
		},
	}

	initServerFlags(rootCmd)
	initToolFlags(rootCmd)
	initCookieFlags(rootCmd)
	initLoggingFlags(rootCmd)

	if err := bindFlags(v, rootCmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	rootCmd.AddCommand(newVersionCommand(v))
	return rootCmd, nil
}

// Execute runs the root command using the process arguments.
func Execute(ctx context.Context, serve ServeFunc) error {
	rootCmd, err := NewRootCommand(serve)
	if err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}
