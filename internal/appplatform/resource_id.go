package appplatform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

const (
	serviceResourceType      = "Microsoft.AppPlatform/Spring"
	configServerResourceType = serviceResourceType + "/configServers"
)

// ConfigServerID identifies one config server in the ARM hierarchy.
type ConfigServerID struct {
	SubscriptionID string
	ResourceGroup  string
	ServiceName    string
	Name           string
}

func (id ConfigServerID) String() string {
	return fmt.Sprintf(
		"/subscriptions/%s/resourceGroups/%s/providers/%s/%s/configServers/%s",
		url.PathEscape(id.SubscriptionID),
		url.PathEscape(id.ResourceGroup),
		serviceResourceType,
		url.PathEscape(id.ServiceName),
		url.PathEscape(id.Name),
	)
}

// ParseConfigServerID parses an ARM resource ID. Segment keys and resource types are matched
// case-insensitively.
func ParseConfigServerID(raw string) (ConfigServerID, error) {
	resourceID, err := arm.ParseResourceID(raw)
	if err != nil {
		return ConfigServerID{}, fmt.Errorf("invalid config server ID %q: %w", raw, err)
	}
	if !strings.EqualFold(resourceID.ResourceType.String(), configServerResourceType) {
		return ConfigServerID{}, fmt.Errorf("invalid config server ID %q: expected resource type %s, got %s", raw, configServerResourceType, resourceID.ResourceType)
	}
	if resourceID.Parent == nil || !strings.EqualFold(resourceID.Parent.ResourceType.String(), serviceResourceType) {
		return ConfigServerID{}, fmt.Errorf("invalid config server ID %q: missing %s parent", raw, serviceResourceType)
	}

	id := ConfigServerID{}
	for _, field := range []struct {
		target *string
		value  string
	}{
		{&id.SubscriptionID, resourceID.SubscriptionID},
		{&id.ResourceGroup, resourceID.ResourceGroupName},
		{&id.ServiceName, resourceID.Parent.Name},
		{&id.Name, resourceID.Name},
	} {
		value, err := url.PathUnescape(field.value)
		if err != nil {
			return ConfigServerID{}, fmt.Errorf("invalid config server ID %q: %w", raw, err)
		}
		if value == "" {
			return ConfigServerID{}, fmt.Errorf("invalid config server ID %q: empty segment", raw)
		}
		*field.target = value
	}

	return id, nil
}
