package appplatform

import (
	"context"
	"net/http"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

// ConfigServersClient manages Microsoft.AppPlatform/Spring/configServers.
type ConfigServersClient struct {
	client *Client
}

func (c *ConfigServersClient) resourcePath(resourceGroup, serviceName, configServerName string) string {
	return ConfigServerID{
		SubscriptionID: c.client.SubscriptionID,
		ResourceGroup:  resourceGroup,
		ServiceName:    serviceName,
		Name:           configServerName,
	}.String()
}

// Get returns ErrorResourceNotFound when the config server does not exist.
func (c *ConfigServersClient) Get(ctx context.Context, resourceGroup, serviceName, configServerName string) (*models.ConfigServerResource, error) {
	resp, err := c.client.request(ctx).
		SetQueryParam("api-version", c.client.APIVersion).
		SetResult(models.ConfigServerResource{}).
		Get(c.resourcePath(resourceGroup, serviceName, configServerName))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return resp.Result().(*models.ConfigServerResource), nil
}

// BeginCreateOrUpdate sends the PUT and returns a poller for the resulting operation.
func (c *ConfigServersClient) BeginCreateOrUpdate(
	ctx context.Context,
	resourceGroup string,
	serviceName string,
	configServerName string,
	resource *models.ConfigServerResource,
) (*Poller, error) {
	path := c.resourcePath(resourceGroup, serviceName, configServerName)
	resp, err := c.client.request(ctx).
		SetQueryParam("api-version", c.client.APIVersion).
		SetHeader("Content-Type", "application/json").
		SetBody(resource).
		SetResult(models.ConfigServerResource{}).
		Put(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return newPoller(c.client, http.MethodPut, path, resp), nil
}

// BeginDelete sends the DELETE and returns a poller for the resulting operation.
func (c *ConfigServersClient) BeginDelete(ctx context.Context, resourceGroup, serviceName, configServerName string) (*Poller, error) {
	path := c.resourcePath(resourceGroup, serviceName, configServerName)
	resp, err := c.client.request(ctx).
		SetQueryParam("api-version", c.client.APIVersion).
		Delete(path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return newPoller(c.client, http.MethodDelete, path, resp), nil
}
