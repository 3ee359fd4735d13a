package appplatform

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/logging"
	"go.uber.org/zap"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

const (
	DefaultBaseURL    = "https://management.azure.com"
	DefaultAPIVersion = "2024-05-01-preview"

	subscriptionsAPIVersion = "2022-12-01"
)

type Client struct {
	HTTPClient     *resty.Client
	SubscriptionID string
	APIVersion     string

	ConfigServers *ConfigServersClient
}

type Option func(*Client)

// WithAPIVersion overrides the api-version sent to the AppPlatform resource provider.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.APIVersion = version
		}
	}
}

// WithLogger logs every exchange with the management API at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.HTTPClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug("management API response",
				zap.String("method", resp.Request.Method),
				zap.String("url", resp.Request.URL),
				zap.Int("status", resp.StatusCode()),
				zap.String("requestID", resp.Header().Get("x-ms-request-id")),
				zap.Duration("elapsed", resp.Time()),
			)
			return nil
		})
		c.HTTPClient.OnError(func(req *resty.Request, err error) {
			logger.Debug("management API request failed",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Error(err),
			)
		})
	}
}

func New(baseURL string, subscriptionID string, accessToken string, options ...Option) *Client {
	transport := logging.NewLoggingHTTPTransport(http.DefaultTransport)

	clientName, _ := os.Executable()

	c := &Client{
		HTTPClient: resty.NewWithClient(&http.Client{Transport: transport}).
			SetHeader("User-Agent", filepath.Base(clientName)).
			SetAuthScheme("Bearer").
			SetAuthToken(accessToken).
			SetBaseURL(baseURL).
			EnableTrace(),
		SubscriptionID: subscriptionID,
		APIVersion:     DefaultAPIVersion,
	}
	c.ConfigServers = &ConfigServersClient{client: c}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.HTTPClient.R().
		SetHeader("Accept", "application/json").
		SetHeader("x-ms-client-request-id", uuid.NewString()).
		SetError(&ErrorResponse{}).
		SetContext(ctx)
}

// GetSubscription reads the configured subscription; used to validate credentials.
func (c *Client) GetSubscription(ctx context.Context) (*models.Subscription, error) {
	resp, err := c.request(ctx).
		SetQueryParam("api-version", subscriptionsAPIVersion).
		SetResult(models.Subscription{}).
		Get("/subscriptions/" + c.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return resp.Result().(*models.Subscription), nil
}

func handleError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return ErrorResourceNotFound
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrorUnauthorized
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		RequestID:  resp.Header().Get("x-ms-request-id"),
	}
	if errResp, ok := resp.Error().(*ErrorResponse); ok && errResp != nil && errResp.Error.Code != "" {
		respErr.Code = errResp.Error.Code
		respErr.Message = errResp.Error.Message
		return respErr
	}
	if resp.StatusCode() == http.StatusInternalServerError {
		respErr.Message = "Internal Server Error"
		return respErr
	}
	respErr.Message = resp.Status()
	return respErr
}
