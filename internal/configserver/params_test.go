package configserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

func TestGitParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  GitParams
		wantErr string
	}{
		{
			name:   "https uri",
			params: GitParams{URI: "https://github.com/fake-user/fake-repository"},
		},
		{
			name:   "ssh uri",
			params: GitParams{URI: "ssh://git@github.com/fake-user/fake-repository.git"},
		},
		{
			name:   "scp style uri",
			params: GitParams{URI: "git@github.com:fake-user/fake-repository.git"},
		},
		{
			name:    "missing uri",
			params:  GitParams{Label: "main"},
			wantErr: "Git URI is required.",
		},
		{
			name:    "unsupported uri",
			params:  GitParams{URI: "ftp//nowhere"},
			wantErr: "Git URI 'ftp//nowhere' is not a valid http(s) or ssh git URI.",
		},
		{
			name:    "password and private key",
			params:  GitParams{URI: "https://github.com/a/b", Password: "p", PrivateKey: "k"},
			wantErr: "Git cannot use both a password and a private key.",
		},
		{
			name:    "host key without algorithm",
			params:  GitParams{URI: "git@github.com:a/b.git", HostKey: "AAAA"},
			wantErr: "Git host key algorithm is required when a host key is set.",
		},
		{
			name:    "unknown host key algorithm",
			params:  GitParams{URI: "git@github.com:a/b.git", HostKey: "AAAA", HostKeyAlgorithm: "ssh-ed448"},
			wantErr: "Git host key algorithm 'ssh-ed448' is not one of ssh-dss, ssh-rsa, ecdsa-sha2-nistp256, ecdsa-sha2-nistp384, ecdsa-sha2-nistp521.",
		},
		{
			name: "pattern repository without uri",
			params: GitParams{
				URI:          "https://github.com/a/b",
				Repositories: []models.GitPatternRepository{{Name: "team"}},
			},
			wantErr: "Git pattern repository 'team' URI is required.",
		},
		{
			name: "pattern repository without name",
			params: GitParams{
				URI:          "https://github.com/a/b",
				Repositories: []models.GitPatternRepository{{URI: "https://github.com/a/c"}},
			},
			wantErr: "Every git pattern repository needs a name.",
		},
		{
			name: "duplicate pattern repository",
			params: GitParams{
				URI: "https://github.com/a/b",
				Repositories: []models.GitPatternRepository{
					{Name: "team", URI: "https://github.com/a/c"},
					{Name: "team", URI: "https://github.com/a/d"},
				},
			},
			wantErr: "Git pattern repository 'team' is defined more than once.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestGitParamsOverride(t *testing.T) {
	strict := true
	file := GitParams{
		URI:         "https://github.com/a/file",
		Label:       "main",
		SearchPaths: []string{"file"},
		Repositories: []models.GitPatternRepository{
			{Name: "team", URI: "https://github.com/a/team"},
		},
	}

	merged := file.Override(GitParams{
		URI:                   "https://github.com/a/flag",
		StrictHostKeyChecking: &strict,
	})

	assert.Equal(t, "https://github.com/a/flag", merged.URI)
	assert.Equal(t, "main", merged.Label)
	assert.Equal(t, []string{"file"}, merged.SearchPaths)
	assert.Equal(t, &strict, merged.StrictHostKeyChecking)
	assert.Len(t, merged.Repositories, 1)
	assert.Equal(t, "https://github.com/a/file", file.URI)
}

func TestCreateParamsProperties(t *testing.T) {
	properties := CreateParams{}.properties()

	assert.Equal(t, models.EnabledStateEnabled, properties.EnabledState)
	assert.Nil(t, properties.RefreshIntervalInSeconds)
	assert.Nil(t, properties.ConfigServer)
}
