package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/appplatform-dev/appctl/internal/appplatform/apitest"
	"github.com/appplatform-dev/appctl/internal/appplatform/models"
	"github.com/appplatform-dev/appctl/internal/configserver"
)

// runCLI executes appctl against baseURL with a hermetic environment and returns stdout.
func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPCTL_CONFIG", "")
	t.Setenv("APPCTL_ENDPOINT", baseURL)
	t.Setenv("APPCTL_ACCESS_TOKEN", "test-token")
	t.Setenv("APPCTL_SUBSCRIPTION_ID", apitest.SubscriptionID)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func succeededConfigServer(uri string) *models.ConfigServerResource {
	resource := &models.ConfigServerResource{
		ID:   apitest.ResourcePath,
		Name: configserver.DefaultName,
		Properties: &models.ConfigServerProperties{
			ProvisioningState: models.ProvisioningStateSucceeded,
			EnabledState:      models.EnabledStateEnabled,
		},
	}
	if uri != "" {
		resource.Properties.ConfigServer = &models.ConfigServerSettings{
			GitProperty: &models.ConfigServerGitProperty{URI: uri, Label: "main"},
		}
	}
	return resource
}

func TestRootCmdTree(t *testing.T) {
	cmd := NewRootCmd()

	configCmd, _, err := cmd.Find([]string{"config"})
	require.NoError(t, err)

	var names []string
	for _, sub := range configCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"create", "show", "delete", "bind", "unbind"}, names)

	for _, name := range []string{"create", "delete", "bind", "unbind"} {
		sub, _, err := cmd.Find([]string{"config", name})
		require.NoError(t, err)
		assert.NotNil(t, sub.Flags().Lookup("no-wait"), name)
		assert.NotNil(t, sub.Flags().ShorthandLookup("s"), name)
		assert.NotNil(t, sub.Flags().ShorthandLookup("g"), name)
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("o"))
}

// syncCountingCore drops every entry and counts Sync calls.
type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return nil
}

func TestRunSyncsLoggerOnFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPCTL_CONFIG", "")
	t.Setenv("APPCTL_DEFAULTS_SERVICE", "")

	core := &syncCountingCore{Core: zapcore.NewNopCore()}
	o := newRootOptions()
	o.buildLogger = func(bool) (*zap.Logger, error) {
		return zap.New(core), nil
	}

	err := run(context.Background(), o, []string{"config", "delete", "-g", apitest.ResourceGroup})

	require.EqualError(t, err, "--service is required")
	assert.Equal(t, 1, core.syncs)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "http://127.0.0.1:0", "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestConfigCreate(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		r.Equal(http.MethodGet, req.Method)
		r.Equal(apitest.ResourcePath, req.URL.Path)
		r.Equal("Bearer test-token", req.Header.Get("Authorization"))
		apitest.NotFound(w, req)
	})
	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		r.Equal(http.MethodPut, req.Method)

		var body models.ConfigServerResource
		r.NoError(json.NewDecoder(req.Body).Decode(&body))
		r.NotNil(body.Properties)
		r.Equal(int64(90), *body.Properties.RefreshIntervalInSeconds)

		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer(""))
	})

	out, err := runCLI(t, baseURL, "config", "create", "-s", apitest.ServiceName, "-g", apitest.ResourceGroup, "--refresh-interval", "90")
	r.NoError(err)

	var printed models.ConfigServerResource
	r.NoError(json.Unmarshal([]byte(out), &printed))
	r.Equal(apitest.ResourcePath, printed.ID)
}

func TestConfigCreateAlreadyExists(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer(""))
	})

	out, err := runCLI(t, baseURL, "config", "create", "-s", apitest.ServiceName, "-g", apitest.ResourceGroup)
	r.EqualError(err, "Config server 'default' already exists.")
	r.Empty(out)
}

func TestConfigShowYAML(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer("https://github.com/fake-user/config"))
	})

	t.Setenv("APPCTL_DEFAULTS_SERVICE", apitest.ServiceName)
	out, err := runCLI(t, baseURL, "config", "show", "-g", apitest.ResourceGroup, "-o", "yaml")
	r.NoError(err)
	r.Contains(out, "uri: https://github.com/fake-user/config")
	r.Contains(out, "provisioningState: Succeeded")
}

func TestConfigDeleteNoWait(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer(""))
	})
	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		r.Equal(http.MethodDelete, req.Method)
		w.Header().Set("Location", "http://"+req.Host+"/operationResults/delete")
		w.WriteHeader(http.StatusAccepted)
	})

	out, err := runCLI(t, baseURL, "config", "delete", "-s", apitest.ServiceName, "-g", apitest.ResourceGroup, "--no-wait")
	r.NoError(err)
	r.Empty(out)
}

func TestConfigUnbindNotFound(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	expectRequest(apitest.NotFound)

	_, err := runCLI(t, baseURL, "config", "unbind", "-s", apitest.ServiceName, "-g", apitest.ResourceGroup)
	r.ErrorIs(err, configserver.ErrResourceNotFound)
	r.EqualError(err, "Config server 'default' not found.")
}

func TestConfigBindWithConfigFile(t *testing.T) {
	r := require.New(t)
	baseURL, expectRequest, closeAPI := apitest.MockManagementAPI(t)
	defer closeAPI()

	configFile := filepath.Join(t.TempDir(), "application.yml")
	r.NoError(os.WriteFile(configFile, []byte(`
spring:
  cloud:
    config:
      server:
        git:
          uri: https://github.com/fake-user/from-file
          label: develop
          search-paths: apps,shared
          repos:
            team:
              pattern: team-*
              uri: https://github.com/fake-user/team
`), 0o600))

	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer(""))
	})
	expectRequest(func(w http.ResponseWriter, req *http.Request) {
		r.Equal(http.MethodPut, req.Method)

		var body models.ConfigServerResource
		r.NoError(json.NewDecoder(req.Body).Decode(&body))
		git := body.Properties.ConfigServer.GitProperty
		r.Equal("https://github.com/fake-user/from-flag", git.URI)
		r.Equal("develop", git.Label)
		r.Equal([]string{"apps", "shared"}, git.SearchPaths)
		r.Len(git.Repositories, 1)
		r.Equal([]string{"team-*"}, git.Repositories[0].Pattern)
		r.NotNil(git.StrictHostKeyChecking)
		r.True(*git.StrictHostKeyChecking)

		apitest.WriteJSON(w, http.StatusOK, succeededConfigServer(git.URI))
	})

	_, err := runCLI(t, baseURL, "config", "bind",
		"-s", apitest.ServiceName,
		"-g", apitest.ResourceGroup,
		"--config-file", configFile,
		"--uri", "https://github.com/fake-user/from-flag",
		"--strict-host-key-checking",
		"-o", "none",
	)
	r.NoError(err)
}

func TestConfigRequiresServiceAndGroup(t *testing.T) {
	_, err := runCLI(t, "http://127.0.0.1:0", "config", "show", "-g", apitest.ResourceGroup)
	require.EqualError(t, err, "--service is required")

	_, err = runCLI(t, "http://127.0.0.1:0", "config", "delete", "-s", apitest.ServiceName)
	require.EqualError(t, err, "--resource-group is required")
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := runCLI(t, "http://127.0.0.1:0", "config", "show", "-s", "a", "-g", "b", "-o", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
