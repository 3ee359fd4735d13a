package models

// ConfigServerResource is the ARM envelope of a service's config server.
type ConfigServerResource struct {
	ID         string                  `json:"id,omitempty"`
	Name       string                  `json:"name,omitempty"`
	Type       string                  `json:"type,omitempty"`
	Properties *ConfigServerProperties `json:"properties,omitempty"`
}

// ConfigServerProperties holds the mutable and read-only config server settings.
type ConfigServerProperties struct {
	ProvisioningState        string                `json:"provisioningState,omitempty"`
	Error                    *Error                `json:"error,omitempty"`
	EnabledState             string                `json:"enabledState,omitempty"`
	RefreshIntervalInSeconds *int64                `json:"refreshIntervalInSeconds,omitempty"`
	ConfigServer             *ConfigServerSettings `json:"configServer,omitempty"`
}

type ConfigServerSettings struct {
	GitProperty *ConfigServerGitProperty `json:"gitProperty,omitempty"`
}

// ConfigServerGitProperty is the default git backend plus optional pattern repositories.
type ConfigServerGitProperty struct {
	Repositories          []GitPatternRepository `json:"repositories,omitempty"`
	URI                   string                 `json:"uri"`
	Label                 string                 `json:"label,omitempty"`
	SearchPaths           []string               `json:"searchPaths,omitempty"`
	Username              string                 `json:"username,omitempty"`
	Password              string                 `json:"password,omitempty"`
	HostKey               string                 `json:"hostKey,omitempty"`
	HostKeyAlgorithm      string                 `json:"hostKeyAlgorithm,omitempty"`
	PrivateKey            string                 `json:"privateKey,omitempty"`
	StrictHostKeyChecking *bool                  `json:"strictHostKeyChecking,omitempty"`
}

// GitPatternRepository routes applications matching Pattern to a separate repository.
type GitPatternRepository struct {
	Name                  string   `json:"name"`
	Pattern               []string `json:"pattern,omitempty"`
	URI                   string   `json:"uri"`
	Label                 string   `json:"label,omitempty"`
	SearchPaths           []string `json:"searchPaths,omitempty"`
	Username              string   `json:"username,omitempty"`
	Password              string   `json:"password,omitempty"`
	HostKey               string   `json:"hostKey,omitempty"`
	HostKeyAlgorithm      string   `json:"hostKeyAlgorithm,omitempty"`
	PrivateKey            string   `json:"privateKey,omitempty"`
	StrictHostKeyChecking *bool    `json:"strictHostKeyChecking,omitempty"`
}

// Error is the ARM error object, also embedded in resource properties.
type Error struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Target  string  `json:"target,omitempty"`
	Details []Error `json:"details,omitempty"`
}

const (
	EnabledStateEnabled  = "Enabled"
	EnabledStateDisabled = "Disabled"
)

const (
	ProvisioningStateNotAvailable = "NotAvailable"
	ProvisioningStateDeleted      = "Deleted"
	ProvisioningStateFailed       = "Failed"
	ProvisioningStateSucceeded    = "Succeeded"
	ProvisioningStateUpdating     = "Updating"
)
