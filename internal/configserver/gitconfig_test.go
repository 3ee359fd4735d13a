package configserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const springConfig = `
spring:
  cloud:
    config:
      server:
        git:
          uri: https://github.com/fake-user/config
          default-label: main
          search-paths: apps, shared
          username: user
          password: secret
          repos:
            zeta:
              pattern:
                - zeta*
                - "*/prod"
              uri: git@github.com:fake-user/zeta.git
              host-key: AAAAB3NzaC1yc2E
              host-key-algorithm: ssh-rsa
              strict-host-key-checking: false
            alpha:
              pattern: alpha*,beta*
              uri: https://github.com/fake-user/alpha
              label: develop
              search-paths:
                - one
`

func TestParseGitConfig(t *testing.T) {
	params, err := ParseGitConfig([]byte(springConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/fake-user/config", params.URI)
	assert.Equal(t, "main", params.Label)
	assert.Equal(t, []string{"apps", "shared"}, params.SearchPaths)
	assert.Equal(t, "user", params.Username)
	assert.Equal(t, "secret", params.Password)
	assert.Nil(t, params.StrictHostKeyChecking)

	require.Len(t, params.Repositories, 2)

	alpha := params.Repositories[0]
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, []string{"alpha*", "beta*"}, alpha.Pattern)
	assert.Equal(t, "develop", alpha.Label)
	assert.Equal(t, []string{"one"}, alpha.SearchPaths)

	zeta := params.Repositories[1]
	assert.Equal(t, "zeta", zeta.Name)
	assert.Equal(t, []string{"zeta*", "*/prod"}, zeta.Pattern)
	assert.Equal(t, "ssh-rsa", zeta.HostKeyAlgorithm)
	require.NotNil(t, zeta.StrictHostKeyChecking)
	assert.False(t, *zeta.StrictHostKeyChecking)

	require.NoError(t, params.Validate())
}

func TestParseGitConfigInvalidList(t *testing.T) {
	_, err := ParseGitConfig([]byte(`
spring:
  cloud:
    config:
      server:
        git:
          search-paths:
            nested: map
`))
	require.Error(t, err)
}

func TestLoadGitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(springConfig), 0o600))

	params, err := LoadGitConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/fake-user/config", params.URI)

	_, err = LoadGitConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
