package services

import (
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/user"
)

// NotificationEvent is the input to audience resolution: the event type plus
// the identities the rules may refer to. Only the fields relevant to the
// event type need to be set.
type NotificationEvent struct {
	Type       notification.EventType
	ActorID    kernel.UUID
	DriverID   *kernel.UUID
	AgentID    *kernel.UUID
	AssigneeID *kernel.UUID
	NewStatus  job.Status
}

// Audience describes who should receive a notification before recipients
// are materialized: individually targeted users, role groups, and an
// optional broadcast to every active user.
type Audience struct {
	Direct    []kernel.UUID
	Roles     []kernel.Role
	Broadcast bool
}

// backOfficeRoles is the escalation group notified of operationally
// significant events.
func backOfficeRoles() []kernel.Role {
	return []kernel.Role{
		kernel.RoleAdmin,
		kernel.RoleSuperAdmin,
		kernel.RoleWarehouse,
		kernel.RoleCustomerService,
	}
}

// AudienceResolver evaluates the table of audience rules per event type and
// de-duplicates the final recipient set. It performs no IO: callers fetch
// the users behind role groups and broadcasts, then merge.
type AudienceResolver struct{}

// NewAudienceResolver creates the resolver.
func NewAudienceResolver() AudienceResolver {
	return AudienceResolver{}
}

// AudienceFor returns the audience rule for an event:
//
//	job_created         assigned driver + broadcast to all active users
//	job_status_changed  assigned driver + assigned agent; reaching an
//	                    escalation status adds the back-office roles
//	driver_assigned     the assignee only
//	agent_assigned      the assignee only
//	batch_created       the back-office roles
//	invoice_overdue     admin, superadmin, customer service
//
// The actor is excluded later, in MergeRecipients.
func (r AudienceResolver) AudienceFor(event NotificationEvent) Audience {
	switch event.Type {
	case notification.EventJobCreated:
		audience := Audience{Broadcast: true}
		if event.DriverID != nil {
			audience.Direct = append(audience.Direct, *event.DriverID)
		}
		return audience

	case notification.EventJobStatusChanged:
		var audience Audience
		if event.DriverID != nil {
			audience.Direct = append(audience.Direct, *event.DriverID)
		}
		if event.AgentID != nil {
			audience.Direct = append(audience.Direct, *event.AgentID)
		}
		if event.NewStatus.TriggersEscalation() {
			audience.Roles = backOfficeRoles()
		}
		return audience

	case notification.EventDriverAssigned, notification.EventAgentAssigned:
		var audience Audience
		if event.AssigneeID != nil {
			audience.Direct = append(audience.Direct, *event.AssigneeID)
		}
		return audience

	case notification.EventBatchCreated:
		return Audience{Roles: backOfficeRoles()}

	case notification.EventInvoiceOverdue:
		return Audience{Roles: []kernel.Role{
			kernel.RoleAdmin,
			kernel.RoleSuperAdmin,
			kernel.RoleCustomerService,
		}}

	default:
		return Audience{}
	}
}

// MergeRecipients materializes the final recipient set: direct targets plus
// the users fetched for role groups and broadcasts, minus the actor, with
// every user appearing at most once regardless of how many rules matched
// them.
func (r AudienceResolver) MergeRecipients(
	actorID kernel.UUID,
	direct []kernel.UUID,
	fetched []*user.User,
) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(direct)+len(fetched))
	recipients := make([]kernel.UUID, 0, len(direct)+len(fetched))

	add := func(id kernel.UUID) {
		if id.IsEqual(actorID) {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	for _, id := range direct {
		add(id)
	}
	for _, u := range fetched {
		if u == nil || !u.IsActive() {
			continue
		}
		add(u.ID())
	}

	return recipients
}
