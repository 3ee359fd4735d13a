// Package cli implements the appctl command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/appplatform-dev/appctl/internal/appplatform"
)

type rootOptions struct {
	v           *viper.Viper
	logger      *zap.Logger
	buildLogger func(debug bool) (*zap.Logger, error)
}

func newRootOptions() *rootOptions {
	return &rootOptions{
		logger:      zap.NewNop(),
		buildLogger: newLogger,
	}
}

// NewRootCmd builds the appctl command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newRootOptions())
}

func newRootCmd(o *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "appctl COMMAND",
		Short:         "Manage the config server of an application platform service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Log management API traffic to stderr")
	flags.StringP("output", "o", outputJSON, "Output format (json, yaml, none)")
	flags.String("subscription", "", "Subscription ID (default $APPCTL_SUBSCRIPTION_ID)")

	rootCmd.AddCommand(newConfigCmd(o), newVersionCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := run(ctx, newRootOptions(), os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command tree and flushes the logger whether or not the command failed.
func run(ctx context.Context, o *rootOptions, args []string) error {
	cmd := newRootCmd(o)
	cmd.SetArgs(args)

	defer func() {
		_ = o.logger.Sync()
	}()
	return cmd.ExecuteContext(ctx)
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	v, err := initViper()
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		V_DEBUG:           "debug",
		V_OUTPUT:          "output",
		V_SUBSCRIPTION_ID: "subscription",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	o.v = v

	if err := validateOutput(v.GetString(V_OUTPUT)); err != nil {
		return err
	}

	logger, err := o.buildLogger(v.GetBool(V_DEBUG))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	o.logger = logger

	if used := v.ConfigFileUsed(); used != "" {
		o.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

func (o *rootOptions) newClient(ctx context.Context) (*appplatform.Client, error) {
	subscriptionID := o.v.GetString(V_SUBSCRIPTION_ID)
	if subscriptionID == "" {
		return nil, errors.New("no subscription configured: pass --subscription or set APPCTL_SUBSCRIPTION_ID")
	}

	endpoint := o.v.GetString(V_ENDPOINT)
	token := o.v.GetString(V_ACCESS_TOKEN)
	if token == "" {
		o.logger.Debug("no access token configured, using the default Azure credential")

		var err error
		if token, err = appplatform.AcquireToken(ctx, endpoint); err != nil {
			return nil, err
		}
	}

	return appplatform.New(endpoint, subscriptionID, token,
		appplatform.WithAPIVersion(o.v.GetString(V_API_VERSION)),
		appplatform.WithLogger(o.logger),
	), nil
}
