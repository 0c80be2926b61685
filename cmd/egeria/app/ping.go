package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/egeria-client-go/internal/versions"
)

const defaultPingWait = 30 * time.Second

func newPingCmd(v *viper.Viper) *cobra.Command {
	var (
		wait       time.Duration
		minVersion string
	)

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Wait for the platform to answer and report its version",
		Long: `Poll the platform origin endpoint with exponential backoff until it answers or
--wait passes, then check the version it reports against --min-version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, v)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close(ctx) }()

			origin, err := s.client.WaitForPlatform(ctx, wait)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, origin); err != nil {
				return err
			}

			version, ok, err := s.client.PlatformVersion(ctx, minVersion)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("platform version %s does not satisfy %s", version, minVersion)
			}
			_, err = fmt.Fprintf(out, "platform version %s\n", version)
			return err
		},
	}
	pingCmd.Flags().DurationVar(&wait, "wait", defaultPingWait, "How long to wait for the platform")
	pingCmd.Flags().StringVar(&minVersion, "min-version", versions.MinimumPlatformVersion,
		"Version constraint the platform must satisfy")
	return pingCmd
}
