package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/appplatform-dev/appctl/internal/appplatform"
	"github.com/appplatform-dev/appctl/internal/configserver"
)

// Ensure provider defined types fully satisfy framework interfaces
var _ datasource.DataSource = &ConfigServerDataSource{}
var _ datasource.DataSourceWithConfigure = &ConfigServerDataSource{}

func NewConfigServerDataSource() datasource.DataSource {
	return &ConfigServerDataSource{}
}

// ConfigServerDataSource defines the data source implementation.
type ConfigServerDataSource struct {
	client *appplatform.Client
}

type ConfigServerDataSourceModel struct {
	ID                types.String `tfsdk:"id"`
	ResourceGroup     types.String `tfsdk:"resource_group"`
	ServiceName       types.String `tfsdk:"service_name"`
	ProvisioningState types.String `tfsdk:"provisioning_state"`
	EnabledState      types.String `tfsdk:"enabled_state"`
	RefreshInterval   types.Int64  `tfsdk:"refresh_interval"`
	GitURI            types.String `tfsdk:"git_uri"`
	GitLabel          types.String `tfsdk:"git_label"`
}

func (d *ConfigServerDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_config_server"
}

func (d *ConfigServerDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "Returns the config server of a service",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:    true,
				Description: "The resource ID of the config server",
			},
			"resource_group": schema.StringAttribute{
				Required:    true,
				Description: "The resource group of the service",
			},
			"service_name": schema.StringAttribute{
				Required:    true,
				Description: "The name of the service",
			},
			"provisioning_state": schema.StringAttribute{
				Computed: true,
			},
			"enabled_state": schema.StringAttribute{
				Computed: true,
			},
			"refresh_interval": schema.Int64Attribute{
				Computed:    true,
				Description: "Seconds between refreshes of the git repositories",
			},
			"git_uri": schema.StringAttribute{
				Computed:    true,
				Description: "The URI of the default git repository, empty when unbound",
			},
			"git_label": schema.StringAttribute{
				Computed: true,
			},
		},
	}
}

func (d *ConfigServerDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*appplatform.Client)

	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *appplatform.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)

		return
	}

	d.client = client
}

func (d *ConfigServerDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data ConfigServerDataSourceModel

	// Read Terraform configuration data into the model
	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	resourceGroup := data.ResourceGroup.ValueString()
	serviceName := data.ServiceName.ValueString()

	configServer, err := configserver.Show(ctx, d.client.ConfigServers, serviceName, resourceGroup)
	if err != nil {
		if errors.Is(err, configserver.ErrResourceNotFound) {
			resp.Diagnostics.AddError("Config server not found", err.Error())
			return
		}
		resp.Diagnostics.AddError("Unable to read config server", err.Error())
		return
	}

	data.ID = types.StringValue(appplatform.ConfigServerID{
		SubscriptionID: d.client.SubscriptionID,
		ResourceGroup:  resourceGroup,
		ServiceName:    serviceName,
		Name:           configserver.DefaultName,
	}.String())
	data.ProvisioningState = types.StringNull()
	data.EnabledState = types.StringNull()
	data.RefreshInterval = types.Int64Null()
	data.GitURI = types.StringNull()
	data.GitLabel = types.StringNull()

	if properties := configServer.Properties; properties != nil {
		data.ProvisioningState = stringValueOrNull(properties.ProvisioningState)
		data.EnabledState = stringValueOrNull(properties.EnabledState)
		data.RefreshInterval = int64ValueOrNull(properties.RefreshIntervalInSeconds)
		if properties.ConfigServer != nil && properties.ConfigServer.GitProperty != nil {
			data.GitURI = stringValueOrNull(properties.ConfigServer.GitProperty.URI)
			data.GitLabel = stringValueOrNull(properties.ConfigServer.GitProperty.Label)
		}
	}

	tflog.Trace(ctx, "read config server data source", map[string]interface{}{
		"id": data.ID.ValueString(),
	})

	diags := resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}
