package appplatform

import (
	"net/http"
	"testing"

	"github.com/appplatform-dev/appctl/internal/appplatform/apitest"
)

const (
	testSubscriptionID = apitest.SubscriptionID
	testResourceGroup  = apitest.ResourceGroup
	testServiceName    = apitest.ServiceName
	testResourcePath   = apitest.ResourcePath
)

func mockManagementAPI(t *testing.T) (string, func(http.HandlerFunc), func()) {
	return apitest.MockManagementAPI(t)
}

func newTestClient(baseURL string) *Client {
	return New(baseURL, testSubscriptionID, "test-token")
}
