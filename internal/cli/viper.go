package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/appplatform-dev/appctl/internal/appplatform"
)

const (
	// Root config keys
	V_SUBSCRIPTION_ID = "subscription_id"
	V_ENDPOINT        = "endpoint"
	V_ACCESS_TOKEN    = "access_token"
	V_API_VERSION     = "api_version"
	V_TIMEOUT         = "timeout"
	V_OUTPUT          = "output"
	V_DEBUG           = "debug"

	// Defaults used when -s/-g are omitted
	V_DEFAULTS_GROUP   = "defaults.group"
	V_DEFAULTS_SERVICE = "defaults.service"
)

const defaultTimeout = 30 * time.Minute

// initViper reads $APPCTL_CONFIG or ./config.yaml and $HOME/.appctl/config.yaml, then layers
// APPCTL_* environment variables on top. A missing config file is not an error.
func initViper() (*viper.Viper, error) {
	v := viper.New()

	if cfgFile := os.Getenv("APPCTL_CONFIG"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search config paths (order matters!)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.appctl")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// E.g. APPCTL_DEFAULTS_GROUP=my-resource-group
	v.SetEnvPrefix("appctl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(V_ENDPOINT, appplatform.DefaultBaseURL)
	v.SetDefault(V_API_VERSION, appplatform.DefaultAPIVersion)
	v.SetDefault(V_TIMEOUT, defaultTimeout)
	v.SetDefault(V_OUTPUT, outputJSON)
	v.SetDefault(V_DEFAULTS_GROUP, "")
	v.SetDefault(V_DEFAULTS_SERVICE, "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return v, fmt.Errorf("failed to load config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return v, nil
}
