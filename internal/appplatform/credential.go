package appplatform

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// AcquireToken obtains a bearer token for baseURL through the default Azure credential chain
// (environment, workload identity, managed identity, Azure CLI).
func AcquireToken(ctx context.Context, baseURL string) (string, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return "", fmt.Errorf("failed to build default Azure credential: %w", err)
	}

	token, err := credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{TokenScope(baseURL)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to acquire access token: %w", err)
	}

	return token.Token, nil
}

// TokenScope returns the .default scope for a management endpoint.
func TokenScope(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/.default"
}
