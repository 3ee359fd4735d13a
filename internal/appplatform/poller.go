package appplatform

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	sdkresource "github.com/hashicorp/terraform-plugin-sdk/v2/helper/resource"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

const (
	headerAsyncOperation = "Azure-AsyncOperation"
	headerLocation       = "Location"
	headerRetryAfter     = "Retry-After"
)

// Poller tracks a long-running PUT or DELETE on a config server.
//
// Status is read from the Azure-AsyncOperation monitor when the service returns one, then from
// the Location header, and otherwise from the resource's provisioningState. A Retry-After header
// on any response delays the next poll. The zero value is a completed operation with no result.
type Poller struct {
	client       *Client
	method       string
	resourcePath string
	asyncURL     string
	locationURL  string
	retryAfter   time.Duration

	done   bool
	status string
	result *models.ConfigServerResource
	err    error
}

func newPoller(client *Client, method string, resourcePath string, resp *resty.Response) *Poller {
	p := &Poller{
		client:       client,
		method:       method,
		resourcePath: resourcePath,
		asyncURL:     resp.Header().Get(headerAsyncOperation),
		locationURL:  resp.Header().Get(headerLocation),
		retryAfter:   retryAfter(resp),
		status:       models.OperationStatusInProgress,
	}

	if method == http.MethodPut {
		if result, ok := resp.Result().(*models.ConfigServerResource); ok && result.ID != "" {
			p.result = result
		}
	}

	switch {
	case p.asyncURL != "" || p.locationURL != "":
	case method == http.MethodDelete:
		p.complete(nil)
	default:
		p.applyProvisioningState(p.result)
	}

	return p
}

// Done reports whether the operation reached a terminal state.
func (p *Poller) Done() bool {
	return p.client == nil || p.done
}

// Status is the last observed operation status.
func (p *Poller) Status() string {
	if p.client == nil {
		return models.OperationStatusSucceeded
	}
	return p.status
}

// Result returns the final resource of a finished PUT, or nil.
func (p *Poller) Result() (*models.ConfigServerResource, error) {
	if !p.Done() {
		return nil, fmt.Errorf("operation has not completed, status %s", p.Status())
	}
	return p.result, p.err
}

// Poll performs a single status check.
func (p *Poller) Poll(ctx context.Context) error {
	if p.Done() {
		return p.err
	}

	switch {
	case p.asyncURL != "":
		return p.pollAsyncOperation(ctx)
	case p.locationURL != "":
		return p.pollLocation(ctx)
	default:
		return p.pollProvisioningState(ctx)
	}
}

// PollUntilDone polls until the operation finishes, fails, or timeout elapses.
func (p *Poller) PollUntilDone(ctx context.Context, timeout time.Duration) (*models.ConfigServerResource, error) {
	if p.Done() {
		return p.result, p.err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := sdkresource.RetryContext(ctx, timeout, func() *sdkresource.RetryError {
		if err := p.waitRetryAfter(ctx); err != nil {
			return sdkresource.NonRetryableError(err)
		}
		if err := p.Poll(ctx); err != nil {
			return sdkresource.NonRetryableError(err)
		}
		if !p.Done() {
			return sdkresource.RetryableError(fmt.Errorf("operation on %s did not finish, last status %s", p.resourcePath, p.status))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p.result, p.err
}

func (p *Poller) pollAsyncOperation(ctx context.Context) error {
	resp, err := p.client.request(ctx).
		SetResult(models.OperationStatus{}).
		Get(p.asyncURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return handleError(resp)
	}
	p.retryAfter = retryAfter(resp)

	operation := resp.Result().(*models.OperationStatus)
	p.status = operation.Status

	switch operation.Status {
	case models.OperationStatusSucceeded:
		return p.finish(ctx)
	case models.OperationStatusFailed, models.OperationStatusCanceled:
		p.complete(newOperationError(operation.Status, operation.Error))
		return p.err
	}
	return nil
}

func (p *Poller) pollLocation(ctx context.Context) error {
	resp, err := p.client.request(ctx).Get(p.locationURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusNotFound && p.method == http.MethodDelete {
			p.complete(nil)
			return nil
		}
		return handleError(resp)
	}
	p.retryAfter = retryAfter(resp)

	if resp.StatusCode() == http.StatusAccepted {
		if location := resp.Header().Get(headerLocation); location != "" {
			p.locationURL = location
		}
		return nil
	}

	return p.finish(ctx)
}

func (p *Poller) pollProvisioningState(ctx context.Context) error {
	resp, err := p.client.request(ctx).
		SetQueryParam("api-version", p.client.APIVersion).
		SetResult(models.ConfigServerResource{}).
		Get(p.resourcePath)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return handleError(resp)
	}
	p.retryAfter = retryAfter(resp)

	p.applyProvisioningState(resp.Result().(*models.ConfigServerResource))
	return p.err
}

// finish fetches the final resource of a PUT; a DELETE has nothing to fetch.
func (p *Poller) finish(ctx context.Context) error {
	if p.method == http.MethodDelete {
		p.complete(nil)
		return nil
	}

	resp, err := p.client.request(ctx).
		SetQueryParam("api-version", p.client.APIVersion).
		SetResult(models.ConfigServerResource{}).
		Get(p.resourcePath)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return handleError(resp)
	}

	p.result = resp.Result().(*models.ConfigServerResource)
	p.complete(nil)
	return nil
}

func (p *Poller) applyProvisioningState(resource *models.ConfigServerResource) {
	if resource != nil {
		p.result = resource
	}
	if resource == nil || resource.Properties == nil {
		p.complete(nil)
		return
	}

	switch resource.Properties.ProvisioningState {
	case models.ProvisioningStateSucceeded, "":
		p.complete(nil)
	case models.ProvisioningStateFailed, models.ProvisioningStateDeleted, models.ProvisioningStateNotAvailable:
		p.status = models.OperationStatusFailed
		p.complete(newOperationError(resource.Properties.ProvisioningState, resource.Properties.Error))
	default:
		p.status = resource.Properties.ProvisioningState
	}
}

func (p *Poller) complete(err error) {
	p.done = true
	p.err = err
	if err == nil {
		p.status = models.OperationStatusSucceeded
	}
}

// waitRetryAfter sleeps for the delay the last response asked for before polling again.
func (p *Poller) waitRetryAfter(ctx context.Context) error {
	if p.retryAfter <= 0 {
		return nil
	}

	timer := time.NewTimer(p.retryAfter)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(resp *resty.Response) time.Duration {
	seconds, err := strconv.Atoi(resp.Header().Get(headerRetryAfter))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
