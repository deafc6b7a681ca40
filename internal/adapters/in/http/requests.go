package http

import "time"

// AddressRequest is the JSON shape of a shipment address.
type AddressRequest struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	CustomerID      string         `json:"customer_id"`
	PickupAddress   AddressRequest `json:"pickup_address"`
	DeliveryAddress AddressRequest `json:"delivery_address"`
	WeightKg        float64        `json:"weight_kg"`
	DeclaredValue   float64        `json:"declared_value"`
	Quantity        int            `json:"quantity"`
	Priority        string         `json:"priority"`
}

// TransitionJobStatusRequest is the body of PATCH /api/v1/jobs/:id/status.
type TransitionJobStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// AssignDriverRequest is the body of POST /api/v1/jobs/:id/driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// AssignDeliveryAgentRequest is the body of POST /api/v1/jobs/:id/agent.
type AssignDeliveryAgentRequest struct {
	AgentID string `json:"agent_id"`
}

// CreateBatchRequest is the body of POST /api/v1/batches.
type CreateBatchRequest struct {
	Name               string   `json:"name"`
	Route              string   `json:"route"`
	Carrier            string   `json:"carrier"`
	CarrierTrackingRef string   `json:"carrier_tracking_ref"`
	JobIDs             []string `json:"job_ids"`
}

// UpdateBatchStatusRequest is the body of PATCH /api/v1/batches/:id/status.
type UpdateBatchStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateInvoiceRequest is the body of PATCH /api/v1/invoices/:id. Absent
// fields leave the corresponding invoice field untouched.
type UpdateInvoiceRequest struct {
	Subtotal *float64   `json:"subtotal"`
	Tax      *float64   `json:"tax"`
	Total    *float64   `json:"total"`
	DueDate  *time.Time `json:"due_date"`
}

// MarkInvoicePaidRequest is the body of POST /api/v1/invoices/:id/pay.
type MarkInvoicePaidRequest struct {
	PaymentMethod    string `json:"payment_method"`
	PaymentReference string `json:"payment_reference"`
}

// CreatedResponse carries the server-generated id of a newly created
// resource.
type CreatedResponse struct {
	ID string `json:"id"`
}
