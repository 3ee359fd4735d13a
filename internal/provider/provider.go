package provider

import (
	"context"
	"errors"
	"os"

	"github.com/matryer/resync"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/appplatform-dev/appctl/internal/appplatform"
)

// Ensure appPlatformProvider satisfies various provider interfaces.
var _ provider.Provider = &appPlatformProvider{}

var configureOnce resync.Once

// appPlatformProvider defines the provider implementation.
type appPlatformProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// AppPlatformProviderModel describes the provider data model.
type AppPlatformProviderModel struct {
	BaseURL        types.String `tfsdk:"base_url"`
	AccessToken    types.String `tfsdk:"access_token"`
	SubscriptionID types.String `tfsdk:"subscription_id"`
}

func (p *appPlatformProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "appplatform"
	resp.Version = p.version
}

func (p *appPlatformProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The application platform terraform provider",
		Attributes: map[string]schema.Attribute{
			"access_token": schema.StringAttribute{
				MarkdownDescription: "Bearer token for the management API. When unset, the default Azure credential chain is used.",
				Optional:            true,
				Sensitive:           true,
			},
			"base_url": schema.StringAttribute{
				MarkdownDescription: "Management API endpoint, defaults to `" + appplatform.DefaultBaseURL + "`.",
				Optional:            true,
			},
			"subscription_id": schema.StringAttribute{
				MarkdownDescription: "Subscription that owns the services.",
				Optional:            true,
			},
		},
	}
}

// Function to read environment with a default value
func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}

func (p *appPlatformProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	accessToken := os.Getenv("TF_APPPLATFORM_ACCESS_TOKEN")
	baseURL := getEnv("TF_APPPLATFORM_BASE_URL", appplatform.DefaultBaseURL)
	subscriptionID := os.Getenv("TF_APPPLATFORM_SUBSCRIPTION_ID")

	var data AppPlatformProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	// Check configuration data, which should take precedence over
	// environment variable data, if found.
	if data.AccessToken.ValueString() != "" {
		accessToken = data.AccessToken.ValueString()
	}

	if data.BaseURL.ValueString() != "" {
		baseURL = data.BaseURL.ValueString()
	}

	if data.SubscriptionID.ValueString() != "" {
		subscriptionID = data.SubscriptionID.ValueString()
	}

	if subscriptionID == "" {
		resp.Diagnostics.AddError(
			"Missing Subscription Configuration",
			"While configuring the provider, the subscription was not found in "+
				"the TF_APPPLATFORM_SUBSCRIPTION_ID environment variable or provider "+
				"configuration block subscription_id attribute.",
		)
		// Not returning early allows the logic to collect all errors.
	}

	if baseURL == "" {
		resp.Diagnostics.AddError(
			"Missing Endpoint Configuration",
			"While configuring the provider, the endpoint was not found in "+
				"the TF_APPPLATFORM_BASE_URL environment variable or provider "+
				"configuration block base_url attribute.",
		)
		// Not returning early allows the logic to collect all errors.
	}

	if resp.Diagnostics.HasError() {
		return
	}

	if accessToken == "" {
		tflog.Debug(ctx, "no access token configured, using the default Azure credential", map[string]interface{}{
			"scope": appplatform.TokenScope(baseURL),
		})

		token, err := appplatform.AcquireToken(ctx, baseURL)
		if err != nil {
			resp.Diagnostics.AddError(
				"Missing Access Token Configuration",
				"While configuring the provider, the access token was not found in "+
					"the TF_APPPLATFORM_ACCESS_TOKEN environment variable or provider "+
					"configuration block access_token attribute, and the default Azure credential failed: "+err.Error(),
			)
			return
		}
		accessToken = token
	}

	client := appplatform.New(baseURL, subscriptionID, accessToken)

	configureOnce.Do(func() {
		_, err := client.GetSubscription(ctx)
		if err != nil {
			if errors.Is(err, appplatform.ErrorUnauthorized) {
				resp.Diagnostics.AddError(
					"Unable to connect to the management API",
					"While configuring the provider, the access token was not valid.",
				)
				return
			}
			resp.Diagnostics.AddError(
				"Unable to connect to the management API",
				"While configuring the provider, the API returns error: "+err.Error(),
			)
		}
	})

	if resp.Diagnostics.HasError() {
		return
	}

	resp.DataSourceData = client
	resp.ResourceData = client
}

func (p *appPlatformProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewConfigServerResource,
	}
}

func (p *appPlatformProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewConfigServerDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &appPlatformProvider{
			version: version,
		}
	}
}
