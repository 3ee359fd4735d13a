// Package configserver implements the commands that manage the config server of an
// application platform service.
//
// Every command reads the singleton config server first and then issues at most one
// mutation through the injected client. Awaiting the returned poller is left to the caller.
package configserver

import (
	"context"
	"errors"

	"github.com/appplatform-dev/appctl/internal/appplatform"
	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

// DefaultName is the only name a config server can have.
const DefaultName = "default"

// ConfigServersClient is the subset of the management client used by the commands.
type ConfigServersClient interface {
	Get(ctx context.Context, resourceGroup, serviceName, configServerName string) (*models.ConfigServerResource, error)
	BeginCreateOrUpdate(ctx context.Context, resourceGroup, serviceName, configServerName string, resource *models.ConfigServerResource) (*appplatform.Poller, error)
	BeginDelete(ctx context.Context, resourceGroup, serviceName, configServerName string) (*appplatform.Poller, error)
}

var _ ConfigServersClient = (*appplatform.ConfigServersClient)(nil)

// Create creates the config server, failing if one already exists.
func Create(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string, params CreateParams) (*appplatform.Poller, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	existing, err := get(ctx, client, serviceName, resourceGroup)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists(DefaultName)
	}

	resource := &models.ConfigServerResource{
		Properties: params.properties(),
	}
	return client.BeginCreateOrUpdate(ctx, resourceGroup, serviceName, DefaultName, resource)
}

// Show returns the config server.
func Show(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string) (*models.ConfigServerResource, error) {
	existing, err := get(ctx, client, serviceName, resourceGroup)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(DefaultName)
	}
	return existing, nil
}

// Delete deletes the config server, failing if there is none.
func Delete(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string) (*appplatform.Poller, error) {
	existing, err := get(ctx, client, serviceName, resourceGroup)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(DefaultName)
	}

	return client.BeginDelete(ctx, resourceGroup, serviceName, DefaultName)
}

// Bind points the config server at the git repositories described by params.
func Bind(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string, params GitParams) (*appplatform.Poller, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	existing, err := get(ctx, client, serviceName, resourceGroup)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(DefaultName)
	}

	resource := updatable(existing)
	resource.Properties.ConfigServer = &models.ConfigServerSettings{
		GitProperty: params.gitProperty(),
	}
	return client.BeginCreateOrUpdate(ctx, resourceGroup, serviceName, DefaultName, resource)
}

// Unbind removes the git settings from the config server.
func Unbind(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string) (*appplatform.Poller, error) {
	existing, err := get(ctx, client, serviceName, resourceGroup)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(DefaultName)
	}

	resource := updatable(existing)
	resource.Properties.ConfigServer = nil
	return client.BeginCreateOrUpdate(ctx, resourceGroup, serviceName, DefaultName, resource)
}

// get maps a missing config server to nil.
func get(ctx context.Context, client ConfigServersClient, serviceName, resourceGroup string) (*models.ConfigServerResource, error) {
	resource, err := client.Get(ctx, resourceGroup, serviceName, DefaultName)
	if errors.Is(err, appplatform.ErrorResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resource, nil
}

// updatable copies the writable part of an existing resource into a new request body.
func updatable(existing *models.ConfigServerResource) *models.ConfigServerResource {
	properties := models.ConfigServerProperties{}
	if existing.Properties != nil {
		properties = *existing.Properties
	}
	properties.ProvisioningState = ""
	properties.Error = nil

	return &models.ConfigServerResource{
		Properties: &properties,
	}
}
