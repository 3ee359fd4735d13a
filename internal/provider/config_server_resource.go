package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/terraform-plugin-framework-timeouts/resource/timeouts"
	"github.com/hashicorp/terraform-plugin-framework-validators/int64validator"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-framework/types/basetypes"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/appplatform-dev/appctl/internal/appplatform"
	"github.com/appplatform-dev/appctl/internal/appplatform/models"
	"github.com/appplatform-dev/appctl/internal/configserver"
)

const defaultConfigServerTimeout = 30 * time.Minute

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &ConfigServerResource{}
var _ resource.ResourceWithImportState = &ConfigServerResource{}
var _ resource.ResourceWithConfigure = &ConfigServerResource{}

func NewConfigServerResource() resource.Resource {
	return &ConfigServerResource{}
}

// ConfigServerResource defines the resource implementation.
type ConfigServerResource struct {
	client *appplatform.Client
}

// ConfigServerResourceModel describes the resource data model.
type ConfigServerResourceModel struct {
	ID                types.String   `tfsdk:"id"`
	ResourceGroup     types.String   `tfsdk:"resource_group"`
	ServiceName       types.String   `tfsdk:"service_name"`
	RefreshInterval   types.Int64    `tfsdk:"refresh_interval"`
	ProvisioningState types.String   `tfsdk:"provisioning_state"`
	Git               types.Object   `tfsdk:"git"`
	Timeouts          timeouts.Value `tfsdk:"timeouts"`
}

// ConfigServerGitModel is the default git repository of the config server.
type ConfigServerGitModel struct {
	URI                   types.String `tfsdk:"uri"`
	Label                 types.String `tfsdk:"label"`
	SearchPaths           types.List   `tfsdk:"search_paths"`
	Username              types.String `tfsdk:"username"`
	Password              types.String `tfsdk:"password"`
	HostKey               types.String `tfsdk:"host_key"`
	HostKeyAlgorithm      types.String `tfsdk:"host_key_algorithm"`
	PrivateKey            types.String `tfsdk:"private_key"`
	StrictHostKeyChecking types.Bool   `tfsdk:"strict_host_key_checking"`
}

var gitAttributeTypes = map[string]attr.Type{
	"uri":                      types.StringType,
	"label":                    types.StringType,
	"search_paths":             types.ListType{ElemType: types.StringType},
	"username":                 types.StringType,
	"password":                 types.StringType,
	"host_key":                 types.StringType,
	"host_key_algorithm":       types.StringType,
	"private_key":              types.StringType,
	"strict_host_key_checking": types.BoolType,
}

func (r *ConfigServerResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_config_server"
}

func (r *ConfigServerResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "Creates and manages the config server of an application platform service. " +
			"A service has at most one config server, always named default.",
		MarkdownDescription: "Creates and manages the config server of an application platform service.\n\n" +
			"A service has at most one config server, always named `default`. " +
			"Use the `git` attribute to bind it to a git repository; removing the attribute unbinds it.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				Description:         "The resource ID of the config server.",
				MarkdownDescription: "The resource ID of the config server.",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"resource_group": schema.StringAttribute{
				Required:            true,
				Description:         "The resource group of the service.",
				MarkdownDescription: "The resource group of the service.",
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"service_name": schema.StringAttribute{
				Required:            true,
				Description:         "The name of the service.",
				MarkdownDescription: "The name of the service.",
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"refresh_interval": schema.Int64Attribute{
				Optional:            true,
				Computed:            true,
				Description:         "Seconds between refreshes of the git repositories. 0 disables refresh.",
				MarkdownDescription: "Seconds between refreshes of the git repositories. `0` disables refresh.",
				Validators: []validator.Int64{
					int64validator.AtLeast(0),
				},
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
					int64planmodifier.RequiresReplace(),
				},
			},
			"provisioning_state": schema.StringAttribute{
				Computed:            true,
				Description:         "The provisioning state reported by the service.",
				MarkdownDescription: "The provisioning state reported by the service.",
			},
			"git": schema.SingleNestedAttribute{
				Optional:            true,
				Description:         "The default git repository served by the config server.",
				MarkdownDescription: "The default git repository served by the config server.",
				Attributes: map[string]schema.Attribute{
					"uri": schema.StringAttribute{
						Required:            true,
						Description:         "The URI of the repository.",
						MarkdownDescription: "The URI of the repository: `http(s)`, `ssh://` or `user@host:path`.",
						Validators: []validator.String{
							gitURIValidator{},
						},
					},
					"label": schema.StringAttribute{
						Optional:            true,
						Description:         "The branch, tag or commit to serve.",
						MarkdownDescription: "The branch, tag or commit to serve.",
					},
					"search_paths": schema.ListAttribute{
						Optional:            true,
						ElementType:         types.StringType,
						Description:         "Directories searched for configuration files.",
						MarkdownDescription: "Directories searched for configuration files.",
					},
					"username": schema.StringAttribute{
						Optional:            true,
						Description:         "The username for basic authentication.",
						MarkdownDescription: "The username for basic authentication.",
					},
					"password": schema.StringAttribute{
						Optional:            true,
						Sensitive:           true,
						Description:         "The password for basic authentication.",
						MarkdownDescription: "The password for basic authentication. Conflicts with `private_key`.",
						Validators: []validator.String{
							stringvalidator.ConflictsWith(path.MatchRelative().AtParent().AtName("private_key")),
						},
					},
					"host_key": schema.StringAttribute{
						Optional:            true,
						Description:         "The host key of the git server.",
						MarkdownDescription: "The host key of the git server. Requires `host_key_algorithm`.",
						Validators: []validator.String{
							stringvalidator.AlsoRequires(path.MatchRelative().AtParent().AtName("host_key_algorithm")),
						},
					},
					"host_key_algorithm": schema.StringAttribute{
						Optional:            true,
						Description:         "The algorithm of the host key.",
						MarkdownDescription: "The algorithm of the host key.",
						Validators: []validator.String{
							stringvalidator.OneOf(configserver.HostKeyAlgorithms...),
						},
					},
					"private_key": schema.StringAttribute{
						Optional:            true,
						Sensitive:           true,
						Description:         "The SSH private key.",
						MarkdownDescription: "The SSH private key.",
					},
					"strict_host_key_checking": schema.BoolAttribute{
						Optional:            true,
						Description:         "Whether git servers with an unknown host key are rejected.",
						MarkdownDescription: "Whether git servers with an unknown host key are rejected.",
					},
				},
			},
		},
		Blocks: map[string]schema.Block{
			"timeouts": timeouts.Block(ctx, timeouts.Opts{
				Create: true,
				Update: true,
				Delete: true,
			}),
		},
	}
}

func (r *ConfigServerResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	client, ok := req.ProviderData.(*appplatform.Client)
	if !ok {
		resp.Diagnostics.AddError(
			"Unexpected Resource Configure Type",
			fmt.Sprintf("Expected *appplatform.Client, got: %T. Please report this issue to the provider developers.", req.ProviderData),
		)
		return
	}

	r.client = client
}

func (r *ConfigServerResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data ConfigServerResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	createTimeout, diags := data.Timeouts.Create(ctx, defaultConfigServerTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	resourceGroup := data.ResourceGroup.ValueString()
	serviceName := data.ServiceName.ValueString()

	params := configserver.CreateParams{}
	if !data.RefreshInterval.IsNull() && !data.RefreshInterval.IsUnknown() {
		params.RefreshInterval = toPtr(data.RefreshInterval.ValueInt64())
	}

	poller, err := configserver.Create(ctx, r.client.ConfigServers, serviceName, resourceGroup, params)
	if err != nil {
		resp.Diagnostics.AddError("Error creating config server", err.Error())
		return
	}

	result, err := poller.PollUntilDone(ctx, createTimeout)
	if err != nil {
		resp.Diagnostics.AddError("Error creating config server", fmt.Sprintf("Unable to create config server, got error: %s", err))
		return
	}

	data.ID = types.StringValue(r.configServerID(resourceGroup, serviceName))
	r.applyResult(&data, result)

	tflog.Trace(ctx, "created config server", map[string]interface{}{
		"id": data.ID.ValueString(),
	})

	// A failed bind below leaves the created server in state as tainted.
	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
	if resp.Diagnostics.HasError() || data.Git.IsNull() {
		return
	}

	result, err = r.bind(ctx, &data, createTimeout)
	if err != nil {
		resp.Diagnostics.AddError("Error binding config server", err.Error())
		return
	}
	r.applyResult(&data, result)

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ConfigServerResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data ConfigServerResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resourceGroup := data.ResourceGroup.ValueString()
	serviceName := data.ServiceName.ValueString()

	configServer, err := configserver.Show(ctx, r.client.ConfigServers, serviceName, resourceGroup)
	if err != nil {
		if errors.Is(err, configserver.ErrResourceNotFound) {
			tflog.Warn(ctx, "config server not found, removing from state", map[string]interface{}{
				"id": data.ID.ValueString(),
			})
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Error reading config server", err.Error())
		return
	}

	data.ID = types.StringValue(r.configServerID(resourceGroup, serviceName))
	data.ProvisioningState = types.StringNull()
	data.RefreshInterval = types.Int64Null()

	var git *models.ConfigServerGitProperty
	if properties := configServer.Properties; properties != nil {
		data.ProvisioningState = stringValueOrNull(properties.ProvisioningState)
		data.RefreshInterval = int64ValueOrNull(properties.RefreshIntervalInSeconds)
		if properties.ConfigServer != nil {
			git = properties.ConfigServer.GitProperty
		}
	}

	gitValue, diags := flattenGit(ctx, git, data.Git)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	data.Git = gitValue

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *ConfigServerResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var plan ConfigServerResourceModel
	var state ConfigServerResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}

	resp.Diagnostics.Append(req.State.Get(ctx, &state)...)
	if resp.Diagnostics.HasError() {
		return
	}

	updateTimeout, diags := plan.Timeouts.Update(ctx, defaultConfigServerTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	var (
		result *models.ConfigServerResource
		err    error
	)
	if plan.Git.IsNull() {
		result, err = r.unbind(ctx, &plan, updateTimeout)
	} else {
		result, err = r.bind(ctx, &plan, updateTimeout)
	}
	if err != nil {
		resp.Diagnostics.AddError("Error updating config server", err.Error())
		return
	}

	plan.ID = state.ID
	plan.RefreshInterval = state.RefreshInterval
	r.applyResult(&plan, result)

	tflog.Trace(ctx, "updated config server", map[string]interface{}{
		"id":    plan.ID.ValueString(),
		"bound": !plan.Git.IsNull(),
	})

	resp.Diagnostics.Append(resp.State.Set(ctx, &plan)...)
}

func (r *ConfigServerResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data ConfigServerResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	deleteTimeout, diags := data.Timeouts.Delete(ctx, defaultConfigServerTimeout)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	poller, err := configserver.Delete(ctx, r.client.ConfigServers, data.ServiceName.ValueString(), data.ResourceGroup.ValueString())
	if err != nil {
		if errors.Is(err, configserver.ErrResourceNotFound) {
			tflog.Warn(ctx, "config server already deleted", map[string]interface{}{
				"id": data.ID.ValueString(),
			})
			return
		}
		resp.Diagnostics.AddError("Error deleting config server", err.Error())
		return
	}

	if _, err := poller.PollUntilDone(ctx, deleteTimeout); err != nil {
		resp.Diagnostics.AddError("Error deleting config server", fmt.Sprintf("Unable to delete config server, got error: %s", err))
		return
	}

	tflog.Trace(ctx, "deleted config server", map[string]interface{}{
		"id": data.ID.ValueString(),
	})
}

func (r *ConfigServerResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	id, err := appplatform.ParseConfigServerID(req.ID)
	if err != nil {
		resp.Diagnostics.AddError("Invalid import ID", err.Error())
		return
	}
	if id.Name != configserver.DefaultName {
		resp.Diagnostics.AddError(
			"Invalid import ID",
			fmt.Sprintf("Config server name must be %q, got %q.", configserver.DefaultName, id.Name),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("id"), id.String())...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("resource_group"), id.ResourceGroup)...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("service_name"), id.ServiceName)...)
}

func (r *ConfigServerResource) configServerID(resourceGroup, serviceName string) string {
	return appplatform.ConfigServerID{
		SubscriptionID: r.client.SubscriptionID,
		ResourceGroup:  resourceGroup,
		ServiceName:    serviceName,
		Name:           configserver.DefaultName,
	}.String()
}

func (r *ConfigServerResource) bind(ctx context.Context, data *ConfigServerResourceModel, timeout time.Duration) (*models.ConfigServerResource, error) {
	params, diags := expandGit(ctx, data.Git)
	if diags.HasError() {
		return nil, fmt.Errorf("invalid git attribute: %v", diags)
	}

	poller, err := configserver.Bind(ctx, r.client.ConfigServers, data.ServiceName.ValueString(), data.ResourceGroup.ValueString(), params)
	if err != nil {
		return nil, err
	}
	return poller.PollUntilDone(ctx, timeout)
}

func (r *ConfigServerResource) unbind(ctx context.Context, data *ConfigServerResourceModel, timeout time.Duration) (*models.ConfigServerResource, error) {
	poller, err := configserver.Unbind(ctx, r.client.ConfigServers, data.ServiceName.ValueString(), data.ResourceGroup.ValueString())
	if err != nil {
		return nil, err
	}
	return poller.PollUntilDone(ctx, timeout)
}

// applyResult copies the computed attributes of a finished operation into data.
func (r *ConfigServerResource) applyResult(data *ConfigServerResourceModel, result *models.ConfigServerResource) {
	data.ProvisioningState = types.StringValue(models.ProvisioningStateSucceeded)
	if result == nil || result.Properties == nil {
		if data.RefreshInterval.IsUnknown() {
			data.RefreshInterval = types.Int64Null()
		}
		return
	}

	if state := result.Properties.ProvisioningState; state != "" {
		data.ProvisioningState = types.StringValue(state)
	}
	if data.RefreshInterval.IsUnknown() {
		data.RefreshInterval = int64ValueOrNull(result.Properties.RefreshIntervalInSeconds)
	}
}

func expandGit(ctx context.Context, value types.Object) (configserver.GitParams, diag.Diagnostics) {
	var (
		model  ConfigServerGitModel
		params configserver.GitParams
		diags  diag.Diagnostics
	)

	diags.Append(value.As(ctx, &model, basetypes.ObjectAsOptions{})...)
	if diags.HasError() {
		return params, diags
	}

	params = configserver.GitParams{
		URI:              model.URI.ValueString(),
		Label:            model.Label.ValueString(),
		Username:         model.Username.ValueString(),
		Password:         model.Password.ValueString(),
		HostKey:          model.HostKey.ValueString(),
		HostKeyAlgorithm: model.HostKeyAlgorithm.ValueString(),
		PrivateKey:       model.PrivateKey.ValueString(),
	}
	if !model.SearchPaths.IsNull() && !model.SearchPaths.IsUnknown() {
		diags.Append(model.SearchPaths.ElementsAs(ctx, &params.SearchPaths, false)...)
	}
	if !model.StrictHostKeyChecking.IsNull() && !model.StrictHostKeyChecking.IsUnknown() {
		params.StrictHostKeyChecking = toPtr(model.StrictHostKeyChecking.ValueBool())
	}

	return params, diags
}

// flattenGit converts the git settings returned by the API. Secrets are never returned, so
// password, host_key and private_key keep their prior values.
func flattenGit(ctx context.Context, git *models.ConfigServerGitProperty, prior types.Object) (types.Object, diag.Diagnostics) {
	var diags diag.Diagnostics

	if git == nil {
		return types.ObjectNull(gitAttributeTypes), diags
	}

	var previous ConfigServerGitModel
	if !prior.IsNull() && !prior.IsUnknown() {
		diags.Append(prior.As(ctx, &previous, basetypes.ObjectAsOptions{})...)
		if diags.HasError() {
			return types.ObjectNull(gitAttributeTypes), diags
		}
	}

	model := ConfigServerGitModel{
		URI:                   types.StringValue(git.URI),
		Label:                 stringValueOrNull(git.Label),
		SearchPaths:           types.ListNull(types.StringType),
		Username:              stringValueOrNull(git.Username),
		Password:              secretValue(git.Password, previous.Password),
		HostKey:               secretValue(git.HostKey, previous.HostKey),
		HostKeyAlgorithm:      stringValueOrNull(git.HostKeyAlgorithm),
		PrivateKey:            secretValue(git.PrivateKey, previous.PrivateKey),
		StrictHostKeyChecking: types.BoolNull(),
	}
	if len(git.SearchPaths) > 0 {
		searchPaths, d := types.ListValueFrom(ctx, types.StringType, git.SearchPaths)
		diags.Append(d...)
		model.SearchPaths = searchPaths
	}
	if git.StrictHostKeyChecking != nil {
		model.StrictHostKeyChecking = types.BoolValue(*git.StrictHostKeyChecking)
	}

	value, d := types.ObjectValueFrom(ctx, gitAttributeTypes, model)
	diags.Append(d...)
	return value, diags
}

func secretValue(returned string, previous types.String) types.String {
	if returned != "" {
		return types.StringValue(returned)
	}
	if previous.IsUnknown() {
		return types.StringNull()
	}
	return previous
}
