package models

// OperationStatus is the body returned by an Azure-AsyncOperation monitor URL.
type OperationStatus struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Error     *Error `json:"error,omitempty"`
}

const (
	OperationStatusInProgress = "InProgress"
	OperationStatusSucceeded  = "Succeeded"
	OperationStatusFailed     = "Failed"
	OperationStatusCanceled   = "Canceled"
)

// Subscription is the subset of GET /subscriptions/{id} used to validate credentials.
type Subscription struct {
	ID             string `json:"id"`
	SubscriptionID string `json:"subscriptionId"`
	DisplayName    string `json:"displayName"`
	State          string `json:"state"`
}
