package provider

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/appplatform-dev/appctl/internal/appplatform"
	"github.com/appplatform-dev/appctl/internal/appplatform/apitest"
	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

func mockManagementAPI(t *testing.T) (string, func(http.HandlerFunc), func()) {
	return apitest.MockManagementAPI(t)
}

// setProviderEnv points the provider at baseURL.
func setProviderEnv(t *testing.T, baseURL string) {
	t.Setenv("TF_APPPLATFORM_ACCESS_TOKEN", "[access-token]")
	t.Setenv("TF_APPPLATFORM_BASE_URL", baseURL)
	t.Setenv("TF_APPPLATFORM_SUBSCRIPTION_ID", apitest.SubscriptionID)
}

// GenerateLabel a random git label
func GenerateLabel(t *testing.T) string {
	t.Helper()

	return "release-" + strings.ToLower(randstr.String(12))
}

func subscriptionResponse(t *testing.T) func(w http.ResponseWriter, req *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		r := require.New(t)
		r.Equal(http.MethodGet, req.Method)
		r.Equal("/subscriptions/"+apitest.SubscriptionID, req.URL.Path)
		r.Equal("Bearer [access-token]", req.Header.Get("Authorization"))
		apitest.WriteJSON(w, http.StatusOK, models.Subscription{
			SubscriptionID: apitest.SubscriptionID,
			State:          "Enabled",
		})
	}
}

func configServerNotFoundResponse(t *testing.T) func(w http.ResponseWriter, req *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		r := require.New(t)
		r.Equal(http.MethodGet, req.Method)
		r.Equal(apitest.ResourcePath, req.URL.Path)
		apitest.NotFound(w, req)
	}
}

func configServer(refreshInterval int64, git *models.ConfigServerGitProperty) *models.ConfigServerResource {
	resource := &models.ConfigServerResource{
		ID:   apitest.ResourcePath,
		Name: "default",
		Type: "Microsoft.AppPlatform/Spring/configServers",
		Properties: &models.ConfigServerProperties{
			ProvisioningState:        models.ProvisioningStateSucceeded,
			EnabledState:             models.EnabledStateEnabled,
			RefreshIntervalInSeconds: &refreshInterval,
		},
	}
	if git != nil {
		resource.Properties.ConfigServer = &models.ConfigServerSettings{GitProperty: git}
	}
	return resource
}

func getConfigServerResponse(t *testing.T, resource *models.ConfigServerResource) func(w http.ResponseWriter, req *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		r := require.New(t)
		r.Equal(http.MethodGet, req.Method)
		r.Equal(apitest.ResourcePath, req.URL.Path)
		r.Equal(appplatform.DefaultAPIVersion, req.URL.Query().Get("api-version"))
		apitest.WriteJSON(w, http.StatusOK, resource)
	}
}

// putConfigServerResponse checks the request body and echoes it back as a succeeded resource.
func putConfigServerResponse(t *testing.T, check func(r *require.Assertions, body *models.ConfigServerResource)) func(w http.ResponseWriter, req *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		r := require.New(t)
		r.Equal(http.MethodPut, req.Method)
		r.Equal(apitest.ResourcePath, req.URL.Path)

		var body models.ConfigServerResource
		r.NoError(json.NewDecoder(req.Body).Decode(&body))
		r.NotNil(body.Properties)
		check(r, &body)

		body.ID = apitest.ResourcePath
		body.Name = "default"
		body.Properties.ProvisioningState = models.ProvisioningStateSucceeded
		apitest.WriteJSON(w, http.StatusOK, &body)
	}
}

func deleteConfigServerResponse(t *testing.T) func(w http.ResponseWriter, req *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		r := require.New(t)
		r.Equal(http.MethodDelete, req.Method)
		r.Equal(apitest.ResourcePath, req.URL.Path)
		w.WriteHeader(http.StatusOK)
	}
}
