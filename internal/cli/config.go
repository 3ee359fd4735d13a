package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appplatform-dev/appctl/internal/appplatform"
	"github.com/appplatform-dev/appctl/internal/configserver"
)

// target holds the -s/-g flags shared by every config subcommand.
type target struct {
	service       string
	resourceGroup string
	noWait        bool
}

func (t *target) register(cmd *cobra.Command, mutating bool) {
	cmd.Flags().StringVarP(&t.service, "service", "s", "", "Name of the service (default $APPCTL_DEFAULTS_SERVICE)")
	cmd.Flags().StringVarP(&t.resourceGroup, "resource-group", "g", "", "Name of the resource group (default $APPCTL_DEFAULTS_GROUP)")
	if mutating {
		cmd.Flags().BoolVar(&t.noWait, "no-wait", false, "Return once the operation is accepted instead of waiting for it")
	}
}

func (o *rootOptions) resolve(t *target) (string, string, error) {
	service := t.service
	if service == "" {
		service = o.v.GetString(V_DEFAULTS_SERVICE)
	}
	resourceGroup := t.resourceGroup
	if resourceGroup == "" {
		resourceGroup = o.v.GetString(V_DEFAULTS_GROUP)
	}

	switch {
	case service == "":
		return "", "", errors.New("--service is required")
	case resourceGroup == "":
		return "", "", errors.New("--resource-group is required")
	}
	return service, resourceGroup, nil
}

func newConfigCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config server",
	}

	cmd.AddCommand(
		newConfigCreateCmd(o),
		newConfigShowCmd(o),
		newConfigDeleteCmd(o),
		newConfigBindCmd(o),
		newConfigUnbindCmd(o),
	)

	return cmd
}

func newConfigCreateCmd(o *rootOptions) *cobra.Command {
	var (
		t               target
		refreshInterval int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the config server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, resourceGroup, err := o.resolve(&t)
			if err != nil {
				return err
			}
			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}

			params := configserver.CreateParams{}
			if cmd.Flags().Changed("refresh-interval") {
				params.RefreshInterval = &refreshInterval
			}

			poller, err := configserver.Create(cmd.Context(), client.ConfigServers, service, resourceGroup, params)
			if err != nil {
				return err
			}
			return o.finish(cmd, poller, t.noWait)
		},
	}

	t.register(cmd, true)
	cmd.Flags().Int64Var(&refreshInterval, "refresh-interval", 0, "Seconds between refreshes of the git repositories, 0 disables refresh")

	return cmd
}

func newConfigShowCmd(o *rootOptions) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the config server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, resourceGroup, err := o.resolve(&t)
			if err != nil {
				return err
			}
			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}

			resource, err := configserver.Show(cmd.Context(), client.ConfigServers, service, resourceGroup)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), o.v.GetString(V_OUTPUT), resource)
		},
	}

	t.register(cmd, false)

	return cmd
}

func newConfigDeleteCmd(o *rootOptions) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the config server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, resourceGroup, err := o.resolve(&t)
			if err != nil {
				return err
			}
			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}

			poller, err := configserver.Delete(cmd.Context(), client.ConfigServers, service, resourceGroup)
			if err != nil {
				return err
			}
			return o.finish(cmd, poller, t.noWait)
		},
	}

	t.register(cmd, true)

	return cmd
}

func newConfigBindCmd(o *rootOptions) *cobra.Command {
	var (
		t          target
		flags      configserver.GitParams
		strict     bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "bind",
		Short: "Bind the config server to git repositories",
		Long: "Bind the config server to git repositories.\n\n" +
			"Settings can be read from a Spring Cloud Config application.yml with --config-file; " +
			"flags override values from the file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, resourceGroup, err := o.resolve(&t)
			if err != nil {
				return err
			}

			params := configserver.GitParams{}
			if configFile != "" {
				if params, err = configserver.LoadGitConfigFile(configFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("strict-host-key-checking") {
				flags.StrictHostKeyChecking = &strict
			}
			params = params.Override(flags)

			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}

			poller, err := configserver.Bind(cmd.Context(), client.ConfigServers, service, resourceGroup, params)
			if err != nil {
				return err
			}
			return o.finish(cmd, poller, t.noWait)
		},
	}

	t.register(cmd, true)
	cmd.Flags().StringVar(&flags.URI, "uri", "", "URI of the default git repository")
	cmd.Flags().StringVar(&flags.Label, "label", "", "Branch, tag or commit of the default repository")
	cmd.Flags().StringSliceVar(&flags.SearchPaths, "search-paths", nil, "Comma separated directories searched for configuration files")
	cmd.Flags().StringVar(&flags.Username, "username", "", "Username for basic authentication")
	cmd.Flags().StringVar(&flags.Password, "password", "", "Password for basic authentication")
	cmd.Flags().StringVar(&flags.HostKey, "host-key", "", "Host key of the git server for SSH access")
	cmd.Flags().StringVar(&flags.HostKeyAlgorithm, "host-key-algorithm", "", "Algorithm of the host key")
	cmd.Flags().StringVar(&flags.PrivateKey, "private-key", "", "SSH private key")
	cmd.Flags().BoolVar(&strict, "strict-host-key-checking", false, "Reject git servers whose host key is unknown")
	cmd.Flags().StringVar(&configFile, "config-file", "", "Spring Cloud Config application.yml to read git settings from")

	return cmd
}

func newConfigUnbindCmd(o *rootOptions) *cobra.Command {
	var t target

	cmd := &cobra.Command{
		Use:   "unbind",
		Short: "Remove the git repositories from the config server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, resourceGroup, err := o.resolve(&t)
			if err != nil {
				return err
			}
			client, err := o.newClient(cmd.Context())
			if err != nil {
				return err
			}

			poller, err := configserver.Unbind(cmd.Context(), client.ConfigServers, service, resourceGroup)
			if err != nil {
				return err
			}
			return o.finish(cmd, poller, t.noWait)
		},
	}

	t.register(cmd, true)

	return cmd
}

// finish waits for the operation unless noWait is set and prints the resulting resource.
func (o *rootOptions) finish(cmd *cobra.Command, poller *appplatform.Poller, noWait bool) error {
	if noWait {
		o.logger.Info("operation accepted", zap.String("status", poller.Status()))
		return nil
	}

	timeout := o.v.GetDuration(V_TIMEOUT)
	o.logger.Debug("waiting for operation", zap.Duration("timeout", timeout))

	result, err := poller.PollUntilDone(cmd.Context(), timeout)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return printResult(cmd.OutOrStdout(), o.v.GetString(V_OUTPUT), result)
}
