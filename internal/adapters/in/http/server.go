// Package http is the inbound REST adapter. It translates requests into
// commands and queries, relying on the identity headers set by the
// authentication collaborator in front of this service.
package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler                commands.CreateJobCommandHandler
	transitionJobStatusHandler      commands.TransitionJobStatusCommandHandler
	assignDriverHandler             commands.AssignDriverCommandHandler
	assignDeliveryAgentHandler      commands.AssignDeliveryAgentCommandHandler
	deleteJobHandler                commands.DeleteJobCommandHandler
	createBatchHandler              commands.CreateBatchCommandHandler
	updateBatchStatusHandler        commands.UpdateBatchStatusCommandHandler
	updateInvoiceHandler            commands.UpdateInvoiceCommandHandler
	sendInvoiceHandler              commands.SendInvoiceCommandHandler
	markInvoicePaidHandler          commands.MarkInvoicePaidCommandHandler
	cancelInvoiceHandler            commands.CancelInvoiceCommandHandler
	markNotificationReadHandler     commands.MarkNotificationReadCommandHandler
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler
	clearNotificationsHandler       commands.ClearNotificationsCommandHandler

	// Query handlers
	trackJobHandler         queries.GetJobByTrackingNumberQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	transitionJobStatusHandler commands.TransitionJobStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	assignDeliveryAgentHandler commands.AssignDeliveryAgentCommandHandler,
	deleteJobHandler commands.DeleteJobCommandHandler,
	createBatchHandler commands.CreateBatchCommandHandler,
	updateBatchStatusHandler commands.UpdateBatchStatusCommandHandler,
	updateInvoiceHandler commands.UpdateInvoiceCommandHandler,
	sendInvoiceHandler commands.SendInvoiceCommandHandler,
	markInvoicePaidHandler commands.MarkInvoicePaidCommandHandler,
	cancelInvoiceHandler commands.CancelInvoiceCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	markAllNotificationsReadHandler commands.MarkAllNotificationsReadCommandHandler,
	clearNotificationsHandler commands.ClearNotificationsCommandHandler,
	trackJobHandler queries.GetJobByTrackingNumberQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
) *Server {
	return &Server{
		createJobHandler:                createJobHandler,
		transitionJobStatusHandler:      transitionJobStatusHandler,
		assignDriverHandler:             assignDriverHandler,
		assignDeliveryAgentHandler:      assignDeliveryAgentHandler,
		deleteJobHandler:                deleteJobHandler,
		createBatchHandler:              createBatchHandler,
		updateBatchStatusHandler:        updateBatchStatusHandler,
		updateInvoiceHandler:            updateInvoiceHandler,
		sendInvoiceHandler:              sendInvoiceHandler,
		markInvoicePaidHandler:          markInvoicePaidHandler,
		cancelInvoiceHandler:            cancelInvoiceHandler,
		markNotificationReadHandler:     markNotificationReadHandler,
		markAllNotificationsReadHandler: markAllNotificationsReadHandler,
		clearNotificationsHandler:       clearNotificationsHandler,
		trackJobHandler:                 trackJobHandler,
		getNotificationsHandler:         getNotificationsHandler,
	}
}

// RegisterRoutes wires all routes into the echo instance. Tracking and the
// health probe are public; everything else requires the identity headers.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/jobs/track/:trackingNumber", s.TrackJob)

	api := e.Group("/api/v1", ActorMiddleware())

	api.POST("/jobs", s.CreateJob)
	api.PATCH("/jobs/:id/status", s.TransitionJobStatus)
	api.POST("/jobs/:id/driver", s.AssignDriver)
	api.POST("/jobs/:id/agent", s.AssignDeliveryAgent)
	api.DELETE("/jobs/:id", s.DeleteJob)

	api.POST("/batches", s.CreateBatch)
	api.PATCH("/batches/:id/status", s.UpdateBatchStatus)

	api.PATCH("/invoices/:id", s.UpdateInvoice)
	api.POST("/invoices/:id/send", s.SendInvoice)
	api.POST("/invoices/:id/pay", s.MarkInvoicePaid)
	api.POST("/invoices/:id/cancel", s.CancelInvoice)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.DELETE("/notifications", s.ClearNotifications)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJob handles POST /api/v1/jobs - registers a new shipment job.
func (s *Server) CreateJob(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("customer_id", err))
	}

	pickup, err := job.NewAddress(req.PickupAddress.Street, req.PickupAddress.City, req.PickupAddress.Postcode)
	if err != nil {
		return writeError(c, err)
	}

	delivery, err := job.NewAddress(req.DeliveryAddress.Street, req.DeliveryAddress.City, req.DeliveryAddress.Postcode)
	if err != nil {
		return writeError(c, err)
	}

	priority, err := job.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(c, err)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(
		jobID, customerID, pickup, delivery,
		req.WeightKg, req.DeclaredValue, req.Quantity, priority, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: jobID.String()})
}

// TransitionJobStatus handles PATCH /api/v1/jobs/:id/status.
func (s *Server) TransitionJobStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req TransitionJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	newStatus, err := job.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewTransitionJobStatusCommand(jobID, newStatus, req.Notes, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.transitionJobStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/jobs/:id/driver.
func (s *Server) AssignDriver(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("driver_id", err))
	}

	cmd, err := commands.NewAssignDriverCommand(jobID, driverID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.assignDriverHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignDeliveryAgent handles POST /api/v1/jobs/:id/agent.
func (s *Server) AssignDeliveryAgent(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req AssignDeliveryAgentRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("agent_id", err))
	}

	cmd, err := commands.NewAssignDeliveryAgentCommand(jobID, agentID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.assignDeliveryAgentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteJob handles DELETE /api/v1/jobs/:id.
func (s *Server) DeleteJob(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	jobID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewDeleteJobCommand(jobID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.deleteJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TrackJob handles GET /api/v1/jobs/track/:trackingNumber. The endpoint is
// public so customers can follow a shipment without an account.
func (s *Server) TrackJob(c echo.Context) error {
	query, err := queries.NewGetJobByTrackingNumberQuery(c.Param("trackingNumber"))
	if err != nil {
		return writeError(c, err)
	}

	jobResponse, err := s.trackJobHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, jobResponse)
}

// CreateBatch handles POST /api/v1/batches.
func (s *Server) CreateBatch(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	var req CreateBatchRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	jobIDs := make([]kernel.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		jobID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(c, errs.NewValueIsInvalidErrorWithCause("job_ids", err))
		}
		jobIDs = append(jobIDs, jobID)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(
		batchID, req.Name, req.Route, req.Carrier, req.CarrierTrackingRef, jobIDs, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createBatchHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: batchID.String()})
}

// UpdateBatchStatus handles PATCH /api/v1/batches/:id/status.
func (s *Server) UpdateBatchStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	batchID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateBatchStatusRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	newStatus, err := batch.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateBatchStatusCommand(batchID, newStatus, req.Notes, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateBatchStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateInvoice handles PATCH /api/v1/invoices/:id - edits a draft invoice.
func (s *Server) UpdateInvoice(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	patch := invoice.UpdatePatch{
		Subtotal: req.Subtotal,
		Tax:      req.Tax,
		Total:    req.Total,
		DueDate:  req.DueDate,
	}

	cmd, err := commands.NewUpdateInvoiceCommand(invoiceID, patch, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.updateInvoiceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SendInvoice handles POST /api/v1/invoices/:id/send.
func (s *Server) SendInvoice(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSendInvoiceCommand(invoiceID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.sendInvoiceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkInvoicePaid handles POST /api/v1/invoices/:id/pay.
func (s *Server) MarkInvoicePaid(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	var req MarkInvoicePaidRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID, req.PaymentMethod, req.PaymentReference, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markInvoicePaidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelInvoice handles POST /api/v1/invoices/:id/cancel.
func (s *Server) CancelInvoice(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	invoiceID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelInvoiceCommand(invoiceID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.cancelInvoiceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetNotifications handles GET /api/v1/notifications - the caller's feed,
// newest first. ?unread=true narrows the feed to unread entries.
func (s *Server) GetNotifications(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	unreadOnly := c.QueryParam("unread") == "true"

	query, err := queries.NewGetNotificationsQuery(actor.ID(), unreadOnly)
	if err != nil {
		return writeError(c, err)
	}

	notifications, err := s.getNotificationsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	notificationID, err := pathUUID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markNotificationReadHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.markAllNotificationsReadHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearNotifications handles DELETE /api/v1/notifications - empties the
// caller's feed.
func (s *Server) ClearNotifications(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewClearNotificationsCommand(actor)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.clearNotificationsHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
