package configserver

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

// HostKeyAlgorithms lists the host key algorithms accepted for SSH repositories.
var HostKeyAlgorithms = []string{
	"ssh-dss",
	"ssh-rsa",
	"ecdsa-sha2-nistp256",
	"ecdsa-sha2-nistp384",
	"ecdsa-sha2-nistp521",
}

var rxScpLikeGitURI = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[^\s]+$`)

// CreateParams are the settings of a new config server.
type CreateParams struct {
	// RefreshInterval in seconds; nil leaves the service default.
	RefreshInterval *int64
}

func (p CreateParams) Validate() error {
	if p.RefreshInterval != nil && *p.RefreshInterval < 0 {
		return invalidArgument("--refresh-interval must be greater than or equal to 0.")
	}
	return nil
}

func (p CreateParams) properties() *models.ConfigServerProperties {
	return &models.ConfigServerProperties{
		EnabledState:             models.EnabledStateEnabled,
		RefreshIntervalInSeconds: p.RefreshInterval,
	}
}

// GitParams describe the default git repository and any pattern repositories.
type GitParams struct {
	URI                   string
	Label                 string
	SearchPaths           []string
	Username              string
	Password              string
	HostKey               string
	HostKeyAlgorithm      string
	PrivateKey            string
	StrictHostKeyChecking *bool
	Repositories          []models.GitPatternRepository
}

func (p GitParams) Validate() error {
	if err := validateRepository("Git", p.URI, p.Password, p.HostKey, p.HostKeyAlgorithm, p.PrivateKey); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(p.Repositories))
	for _, repo := range p.Repositories {
		if repo.Name == "" {
			return invalidArgument("Every git pattern repository needs a name.")
		}
		if _, ok := seen[repo.Name]; ok {
			return invalidArgument("Git pattern repository '%s' is defined more than once.", repo.Name)
		}
		seen[repo.Name] = struct{}{}

		subject := "Git pattern repository '" + repo.Name + "'"
		if err := validateRepository(subject, repo.URI, repo.Password, repo.HostKey, repo.HostKeyAlgorithm, repo.PrivateKey); err != nil {
			return err
		}
	}
	return nil
}

func validateRepository(subject, uri, password, hostKey, hostKeyAlgorithm, privateKey string) error {
	if uri == "" {
		return invalidArgument("%s URI is required.", subject)
	}
	if !IsGitURI(uri) {
		return invalidArgument("%s URI '%s' is not a valid http(s) or ssh git URI.", subject, uri)
	}
	if password != "" && privateKey != "" {
		return invalidArgument("%s cannot use both a password and a private key.", subject)
	}
	if hostKey != "" && hostKeyAlgorithm == "" {
		return invalidArgument("%s host key algorithm is required when a host key is set.", subject)
	}
	if hostKeyAlgorithm != "" && !contains(HostKeyAlgorithms, hostKeyAlgorithm) {
		return invalidArgument("%s host key algorithm '%s' is not one of %s.", subject, hostKeyAlgorithm, strings.Join(HostKeyAlgorithms, ", "))
	}
	return nil
}

// IsGitURI accepts http(s), ssh:// and scp-style user@host:path repository URIs.
func IsGitURI(uri string) bool {
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return govalidator.IsURL(uri)
	case strings.HasPrefix(uri, "ssh://"):
		return govalidator.IsRequestURL(uri)
	default:
		return rxScpLikeGitURI.MatchString(uri)
	}
}

func (p GitParams) gitProperty() *models.ConfigServerGitProperty {
	return &models.ConfigServerGitProperty{
		Repositories:          p.Repositories,
		URI:                   p.URI,
		Label:                 p.Label,
		SearchPaths:           p.SearchPaths,
		Username:              p.Username,
		Password:              p.Password,
		HostKey:               p.HostKey,
		HostKeyAlgorithm:      p.HostKeyAlgorithm,
		PrivateKey:            p.PrivateKey,
		StrictHostKeyChecking: p.StrictHostKeyChecking,
	}
}

// Override returns p with every field set in other replacing the one in p.
func (p GitParams) Override(other GitParams) GitParams {
	merged := p
	overrideString(&merged.URI, other.URI)
	overrideString(&merged.Label, other.Label)
	overrideString(&merged.Username, other.Username)
	overrideString(&merged.Password, other.Password)
	overrideString(&merged.HostKey, other.HostKey)
	overrideString(&merged.HostKeyAlgorithm, other.HostKeyAlgorithm)
	overrideString(&merged.PrivateKey, other.PrivateKey)
	if len(other.SearchPaths) > 0 {
		merged.SearchPaths = other.SearchPaths
	}
	if other.StrictHostKeyChecking != nil {
		merged.StrictHostKeyChecking = other.StrictHostKeyChecking
	}
	if len(other.Repositories) > 0 {
		merged.Repositories = other.Repositories
	}
	return merged
}

func overrideString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func contains[T comparable](slice []T, value T) bool {
	for _, a := range slice {
		if a == value {
			return true
		}
	}
	return false
}
