package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/appplatform-dev/appctl/internal/configserver"
)

type gitURIValidator struct{}

// Description returns a plain text description of the validator's behavior, suitable for a practitioner to understand its impact.
func (v gitURIValidator) Description(ctx context.Context) string {
	return "URI must be an http(s) URL, an ssh:// URL or an scp-style user@host:path git address."
}

// MarkdownDescription returns a markdown formatted description of the validator's behavior, suitable for a practitioner to understand its impact.
func (v gitURIValidator) MarkdownDescription(ctx context.Context) string {
	return "URI must be an `http(s)` URL, an `ssh://` URL or an scp-style `user@host:path` git address."
}

// ValidateString Validate runs the main validation logic of the validator, reading configuration data out of `req` and updating `resp` with diagnostics.
func (v gitURIValidator) ValidateString(ctx context.Context, req validator.StringRequest, resp *validator.StringResponse) {
	// If the value is unknown or null, there is nothing to validate.
	if req.ConfigValue.IsUnknown() || req.ConfigValue.IsNull() {
		return
	}

	if !configserver.IsGitURI(req.ConfigValue.ValueString()) {
		resp.Diagnostics.AddAttributeError(
			req.Path,
			"Incorrect git URI format",
			v.Description(ctx),
		)
	}
}

// stringValueOrNull maps the empty string the API returns for unset fields to null.
func stringValueOrNull(s string) types.String {
	if s == "" {
		return types.StringNull()
	}
	return types.StringValue(s)
}

func int64ValueOrNull(i *int64) types.Int64 {
	if i == nil {
		return types.Int64Null()
	}
	return types.Int64Value(*i)
}

func toPtr[t any](u t) *t { return &u }
