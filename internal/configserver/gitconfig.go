package configserver

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

// springConfigFile mirrors the spring.cloud.config.server.git section of a Spring Cloud
// Config application.yml.
type springConfigFile struct {
	Spring struct {
		Cloud struct {
			Config struct {
				Server struct {
					Git springGitDefault `yaml:"git"`
				} `yaml:"server"`
			} `yaml:"config"`
		} `yaml:"cloud"`
	} `yaml:"spring"`
}

type springGitRepository struct {
	URI                   string     `yaml:"uri"`
	Label                 string     `yaml:"label"`
	DefaultLabel          string     `yaml:"default-label"`
	SearchPaths           stringList `yaml:"search-paths"`
	Username              string     `yaml:"username"`
	Password              string     `yaml:"password"`
	HostKey               string     `yaml:"host-key"`
	HostKeyAlgorithm      string     `yaml:"host-key-algorithm"`
	PrivateKey            string     `yaml:"private-key"`
	StrictHostKeyChecking *bool      `yaml:"strict-host-key-checking"`
}

func (r springGitRepository) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.DefaultLabel
}

type springGitDefault struct {
	springGitRepository `yaml:",inline"`
	Repos               map[string]springGitPatternRepository `yaml:"repos"`
}

type springGitPatternRepository struct {
	springGitRepository `yaml:",inline"`
	Pattern             stringList `yaml:"pattern"`
}

// stringList accepts either a YAML sequence or a comma separated scalar, as Spring does.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var items []string
		for _, item := range strings.Split(node.Value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		*l = items
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
}

// LoadGitConfigFile reads git settings from a Spring Cloud Config YAML file.
func LoadGitConfigFile(path string) (GitParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GitParams{}, invalidArgument("Cannot read config file '%s': %s", path, err)
	}
	params, err := ParseGitConfig(data)
	if err != nil {
		return GitParams{}, invalidArgument("Cannot parse config file '%s': %s", path, err)
	}
	return params, nil
}

// ParseGitConfig extracts git settings from Spring Cloud Config YAML. Pattern repositories are
// returned sorted by name.
func ParseGitConfig(data []byte) (GitParams, error) {
	var file springConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return GitParams{}, err
	}

	git := file.Spring.Cloud.Config.Server.Git
	params := GitParams{
		URI:                   git.URI,
		Label:                 git.label(),
		SearchPaths:           git.SearchPaths,
		Username:              git.Username,
		Password:              git.Password,
		HostKey:               git.HostKey,
		HostKeyAlgorithm:      git.HostKeyAlgorithm,
		PrivateKey:            git.PrivateKey,
		StrictHostKeyChecking: git.StrictHostKeyChecking,
	}

	names := make([]string, 0, len(git.Repos))
	for name := range git.Repos {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		repo := git.Repos[name]
		params.Repositories = append(params.Repositories, models.GitPatternRepository{
			Name:                  name,
			Pattern:               repo.Pattern,
			URI:                   repo.URI,
			Label:                 repo.label(),
			SearchPaths:           repo.SearchPaths,
			Username:              repo.Username,
			Password:              repo.Password,
			HostKey:               repo.HostKey,
			HostKeyAlgorithm:      repo.HostKeyAlgorithm,
			PrivateKey:            repo.PrivateKey,
			StrictHostKeyChecking: repo.StrictHostKeyChecking,
		})
	}

	return params, nil
}
