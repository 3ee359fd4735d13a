package appplatform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigServerIDRoundTrip(t *testing.T) {
	id := ConfigServerID{
		SubscriptionID: testSubscriptionID,
		ResourceGroup:  testResourceGroup,
		ServiceName:    testServiceName,
		Name:           "default",
	}
	assert.Equal(t, testResourcePath, id.String())

	parsed, err := ParseConfigServerID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseConfigServerIDCaseInsensitive(t *testing.T) {
	parsed, err := ParseConfigServerID("/SUBSCRIPTIONS/sub/resourcegroups/rg/providers/microsoft.appplatform/spring/svc/configservers/default/")
	require.NoError(t, err)
	assert.Equal(t, ConfigServerID{
		SubscriptionID: "sub",
		ResourceGroup:  "rg",
		ServiceName:    "svc",
		Name:           "default",
	}, parsed)
}

func TestParseConfigServerIDEscapedNames(t *testing.T) {
	id := ConfigServerID{
		SubscriptionID: testSubscriptionID,
		ResourceGroup:  "my resource group",
		ServiceName:    testServiceName,
		Name:           "default",
	}

	parsed, err := ParseConfigServerID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseConfigServerIDInvalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"/subscriptions/sub/resourceGroups/rg",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/Spring/svc/configServers/default",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/Spring/svc/apps/default",
		"/subscriptions/sub/resourceGroups//providers/Microsoft.AppPlatform/Spring/svc/configServers/default",
		"subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/Spring/svc/configServers/default",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/Spring/svc/apps/app/configServers/default",
		"/subscriptions/sub/resourceGroups/rg/providers/Microsoft.AppPlatform/configServers/default",
	} {
		_, err := ParseConfigServerID(raw)
		assert.Error(t, err, raw)
	}
}

func TestTokenScope(t *testing.T) {
	assert.Equal(t, "https://management.azure.com/.default", TokenScope("https://management.azure.com/"))
}
