package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/suggest"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketKeyAllocator hands out the per-day sequence number behind the
// T<YYYYMMDD>-<NN> ticket key. Backed by Redis or a Postgres counter table in
// production and by the in-memory store otherwise. Counters only ever move
// forward, so a sequence number is never reissued within a day even after the
// ticket that carried it is deleted.
type TicketKeyAllocator interface {
	NextSequence(ctx context.Context, day string) (int, error)
	Advance(ctx context.Context, day string, seq int) error
}

// Actor identifies the user invoking a guarded operation.
type Actor struct {
	ID   string
	Name string
	Role domain.Role
}

// TicketService owns the ticket lifecycle. Every transition guard lives here,
// not in the handlers: the invariants hold regardless of which caller invokes
// an operation.
type TicketService struct {
	tickets     repository.TicketRepository
	logs        repository.TicketLogRepository
	permissions *rbac.Service
	keys        TicketKeyAllocator
	suggester   suggest.Provider
	dispatcher  events.Dispatcher
	logger      *zap.Logger
	clock       func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	LogRepo      repository.TicketLogRepository
	Permissions  *rbac.Service
	KeyAllocator TicketKeyAllocator
	Suggester    suggest.Provider
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	Clock        func() time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	suggester := deps.Suggester
	if suggester == nil {
		suggester = suggest.Noop{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:     deps.TicketRepo,
		logs:        deps.LogRepo,
		permissions: deps.Permissions,
		keys:        deps.KeyAllocator,
		suggester:   suggester,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
		clock:       clock,
	}
}

// CreateInput describes ticket creation payload. Status and assignee are not
// settable at creation: every new ticket starts OPEN and unassigned.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
	Tags        []string
	Attachments []domain.AttachmentRef
}

// TriageInput carries triage-field updates; nil fields are untouched.
type TriageInput struct {
	Problems     *string
	Troubleshoot *string
	Remarks      *string
}

// Create opens a new ticket for the actor. Missing category or priority may
// be filled by the suggestion provider; its failure never blocks creation.
func (s *TicketService) Create(ctx context.Context, actor Actor, input CreateInput) (*domain.Ticket, error) {
	if !s.permissions.HasPermission(actor.Role, domain.PermCreateTicket) {
		return nil, util.NewPermissionDenied("")
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		return nil, util.NewValidationError("title required", nil)
	}
	if description == "" {
		return nil, util.NewValidationError("description required", nil)
	}
	if input.Category != "" && !input.Category.IsValid() {
		return nil, util.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return nil, util.NewValidationError("unknown priority", map[string]any{"priority": input.Priority})
	}

	category := input.Category
	priority := input.Priority
	if category == "" || priority == "" {
		if suggestion := s.trySuggest(ctx, title, description); suggestion != nil {
			if category == "" && suggestion.Category.IsValid() {
				category = suggestion.Category
			}
			if priority == "" && suggestion.Priority.IsValid() {
				priority = suggestion.Priority
			}
		}
	}
	if category == "" {
		category = domain.TicketCategoryOther
	}
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}

	id, err := s.nextTicketID(ctx)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:            id,
		Title:         title,
		Description:   description,
		Category:      category,
		Priority:      priority,
		Status:        domain.TicketStatusOpen,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		Tags:          input.Tags,
		Attachments:   input.Attachments,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeSystem, "ticket created")
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    eventActor(actor),
		Payload: events.TicketCreatedPayload{
			RequesterID: ticket.RequesterID,
			Category:    ticket.Category,
			Priority:    ticket.Priority,
			Title:       ticket.Title,
		},
	})
	return ticket, nil
}

// Get fetches a ticket the actor may see: their own, one they hold, or any
// with view_all_tickets.
func (s *TicketService) Get(ctx context.Context, actor Actor, ticketID string) (*domain.Ticket, []domain.TicketLogEntry, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	if ticket.RequesterID != actor.ID && !ticket.IsAssignee(actor.ID) &&
		!s.permissions.HasPermission(actor.Role, domain.PermViewAllTickets) {
		return nil, nil, util.NewPermissionDenied("")
	}
	logEntries, err := s.logs.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, nil, util.NewStoreError(err)
	}
	return ticket, logEntries, nil
}

// List returns tickets visible to the actor. Without view_all_tickets the
// filter collapses to the actor's own requests.
func (s *TicketService) List(ctx context.Context, actor Actor, filter repository.TicketFilter) ([]domain.Ticket, error) {
	if !s.permissions.HasPermission(actor.Role, domain.PermViewAllTickets) {
		requesterID := actor.ID
		filter.RequesterID = &requesterID
	}
	tickets, err := s.tickets.List(ctx, filter)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	return tickets, nil
}

// Take moves a ticket to IN_PROGRESS and assigns it to the actor. Re-entry
// from ON_HOLD is allowed; a ticket already IN_PROGRESS is not retaken.
func (s *TicketService) Take(ctx context.Context, actor Actor, ticketID string) (*domain.Ticket, error) {
	if !actor.Role.IsStaff() ||
		!s.permissions.HasAny(actor.Role, domain.PermAssignTicket, domain.PermEditTicket) {
		return nil, util.NewPermissionDenied("")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID == actor.ID {
		return nil, util.NewSelfServiceForbidden()
	}
	switch ticket.Status {
	case domain.TicketStatusOpen, domain.TicketStatusOnHold:
	default:
		return nil, util.NewInvalidTransition(string(ticket.Status), string(domain.TicketStatusInProgress))
	}

	oldStatus := ticket.Status
	assigneeID := actor.ID
	assigneeName := actor.Name
	ticket.Status = domain.TicketStatusInProgress
	ticket.AssigneeID = &assigneeID
	ticket.AssigneeName = &assigneeName
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeStatusChange,
		fmt.Sprintf("status changed from %s to %s; assigned to %s", oldStatus, ticket.Status, actor.Name))
	s.publishStatusChange(ctx, actor, ticket, oldStatus, "")
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		Actor:    eventActor(actor),
		Payload: events.TicketAssignedPayload{
			RequesterID:  ticket.RequesterID,
			AssigneeID:   assigneeID,
			AssigneeName: assigneeName,
		},
	})
	return ticket, nil
}

// BulkTakeResult reports the outcome per ticket id of a bulk take.
type BulkTakeResult struct {
	Taken  []string
	Failed map[string]error
}

// BulkTake assigns a batch of tickets to the actor. Tickets already
// IN_PROGRESS are skipped rather than failed; other guard violations are
// reported per id.
func (s *TicketService) BulkTake(ctx context.Context, actor Actor, ticketIDs []string) BulkTakeResult {
	result := BulkTakeResult{Failed: make(map[string]error)}
	for _, id := range ticketIDs {
		if ticket, err := s.getTicket(ctx, id); err == nil && ticket.Status == domain.TicketStatusInProgress {
			continue
		}
		if _, err := s.Take(ctx, actor, id); err != nil {
			result.Failed[id] = err
			continue
		}
		result.Taken = append(result.Taken, id)
	}
	return result
}

// Hold parks an IN_PROGRESS ticket.
func (s *TicketService) Hold(ctx context.Context, actor Actor, ticketID string) (*domain.Ticket, error) {
	if !s.permissions.HasPermission(actor.Role, domain.PermEditTicket) {
		return nil, util.NewPermissionDenied("")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.IsAssignee(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, util.NewPermissionDenied("only the assignee may hold a ticket")
	}
	if ticket.Status != domain.TicketStatusInProgress {
		return nil, util.NewInvalidTransition(string(ticket.Status), string(domain.TicketStatusOnHold))
	}

	oldStatus := ticket.Status
	ticket.Status = domain.TicketStatusOnHold
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeStatusChange,
		fmt.Sprintf("status changed from %s to %s", oldStatus, ticket.Status))
	s.publishStatusChange(ctx, actor, ticket, oldStatus, "")
	return ticket, nil
}

// Resolve marks a ticket RESOLVED. The assignee is left untouched.
func (s *TicketService) Resolve(ctx context.Context, actor Actor, ticketID string) (*domain.Ticket, error) {
	if !actor.Role.IsStaff() || !s.permissions.HasPermission(actor.Role, domain.PermEditTicket) {
		return nil, util.NewPermissionDenied("")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID == actor.ID {
		return nil, util.NewSelfServiceForbidden()
	}
	switch ticket.Status {
	case domain.TicketStatusOpen, domain.TicketStatusInProgress:
	default:
		return nil, util.NewInvalidTransition(string(ticket.Status), string(domain.TicketStatusResolved))
	}

	oldStatus := ticket.Status
	ticket.Status = domain.TicketStatusResolved
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeStatusChange,
		fmt.Sprintf("status changed from %s to %s", oldStatus, ticket.Status))
	s.publishStatusChange(ctx, actor, ticket, oldStatus, "")
	return ticket, nil
}

// Verify confirms a resolved ticket. Only the original requester or an ADMIN
// may verify, and only from exactly RESOLVED. Afterwards triage fields are
// read-only unless an admin unlocks the ticket.
func (s *TicketService) Verify(ctx context.Context, actor Actor, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, util.NewPermissionDenied("only the requester or an admin may verify")
	}
	if ticket.Status != domain.TicketStatusResolved {
		return nil, util.NewInvalidTransition(string(ticket.Status), string(domain.TicketStatusVerified))
	}

	oldStatus := ticket.Status
	ticket.Status = domain.TicketStatusVerified
	ticket.EditUnlocked = false
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeStatusChange,
		fmt.Sprintf("status changed from %s to %s", oldStatus, ticket.Status))
	s.publishStatusChange(ctx, actor, ticket, oldStatus, "")
	return ticket, nil
}

// Reject closes a non-terminal ticket with a rejection reason.
func (s *TicketService) Reject(ctx context.Context, actor Actor, ticketID, reason string) (*domain.Ticket, error) {
	if !actor.Role.IsStaff() || !s.permissions.HasPermission(actor.Role, domain.PermEditTicket) {
		return nil, util.NewPermissionDenied("")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID == actor.ID {
		return nil, util.NewSelfServiceForbidden()
	}
	if ticket.Status.IsTerminal() {
		return nil, util.NewInvalidTransition(string(ticket.Status), string(domain.TicketStatusClosed))
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "rejected"
	}
	oldStatus := ticket.Status
	now := s.clock()
	ticket.Status = domain.TicketStatusClosed
	ticket.ClosedAt = &now
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeStatusChange,
		fmt.Sprintf("status changed from %s to %s: %s", oldStatus, ticket.Status, reason))
	s.publishStatusChange(ctx, actor, ticket, oldStatus, reason)
	return ticket, nil
}

// SetUnlocked toggles the admin-only edit override on a VERIFIED ticket. Not
// a status change: the ticket stays VERIFIED.
func (s *TicketService) SetUnlocked(ctx context.Context, actor Actor, ticketID string, unlocked bool) (*domain.Ticket, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, util.NewPermissionDenied("only admins may unlock a verified ticket")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != domain.TicketStatusVerified {
		return nil, util.NewInvalidTransition(string(ticket.Status), "unlocked-for-edit")
	}
	if ticket.EditUnlocked == unlocked {
		return ticket, nil
	}

	ticket.EditUnlocked = unlocked
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	verb := "locked"
	if unlocked {
		verb = "unlocked for edit"
	}
	s.appendLog(ctx, ticket.ID, actor, domain.LogTypeSystem, "ticket "+verb)
	return ticket, nil
}

// Delete removes a ticket and cascades to its log entries. Irreversible.
func (s *TicketService) Delete(ctx context.Context, actor Actor, ticketID string) error {
	if !actor.Role.IsStaff() || !s.permissions.HasPermission(actor.Role, domain.PermDeleteTicket) {
		return util.NewPermissionDenied("")
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.RequesterID == actor.ID {
		return util.NewSelfServiceForbidden()
	}

	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return util.NewStoreError(err)
	}
	if err := s.logs.DeleteByTicket(ctx, ticketID); err != nil {
		return util.NewStoreError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticketID,
		Actor:    eventActor(actor),
		Payload: events.TicketDeletedPayload{
			RequesterID: ticket.RequesterID,
			Title:       ticket.Title,
		},
	})
	return nil
}

// UpdateTriage writes the triage fields. Only the current assignee (or an
// admin) may write, and only while the ticket is editable; each changed field
// gets its own SYSTEM log entry.
func (s *TicketService) UpdateTriage(ctx context.Context, actor Actor, ticketID string, input TriageInput) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.IsAssignee(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, util.NewPermissionDenied("only the assignee may edit triage fields")
	}
	if !ticket.Editable() {
		return nil, util.NewPermissionDenied("ticket is read-only")
	}

	var changed []string
	if input.Problems != nil && *input.Problems != ticket.Problems {
		ticket.Problems = *input.Problems
		changed = append(changed, "problems")
	}
	if input.Troubleshoot != nil && *input.Troubleshoot != ticket.Troubleshoot {
		ticket.Troubleshoot = *input.Troubleshoot
		changed = append(changed, "troubleshoot")
	}
	if input.Remarks != nil && *input.Remarks != ticket.Remarks {
		ticket.Remarks = *input.Remarks
		changed = append(changed, "remarks")
	}
	if len(changed) == 0 {
		return ticket, nil
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, util.NewStoreError(err)
	}
	for _, field := range changed {
		s.appendLog(ctx, ticket.ID, actor, domain.LogTypeSystem, field+" updated")
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketTriageUpdated,
		TicketID: ticket.ID,
		Actor:    eventActor(actor),
		Payload: events.TicketTriageUpdatedPayload{
			RequesterID: ticket.RequesterID,
			Fields:      changed,
		},
	})
	return ticket, nil
}

// Comment appends a COMMENT log entry. Empty or whitespace-only text is
// rejected before anything is persisted.
func (s *TicketService) Comment(ctx context.Context, actor Actor, ticketID, body string) (*domain.TicketLogEntry, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, util.NewValidationError("comment text required", nil)
	}
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.RequesterID != actor.ID && !ticket.IsAssignee(actor.ID) && actor.Role != domain.RoleAdmin {
		return nil, util.NewPermissionDenied("")
	}
	if !ticket.Editable() {
		return nil, util.NewPermissionDenied("ticket is read-only")
	}

	entry := &domain.TicketLogEntry{
		ID:        uuid.NewString(),
		TicketID:  ticket.ID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Type:      domain.LogTypeComment,
		Message:   body,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, util.NewStoreError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		Actor:    eventActor(actor),
		Payload: events.TicketCommentAddedPayload{
			RequesterID: ticket.RequesterID,
			AssigneeID:  ticket.AssigneeID,
			BodyPreview: stringPreview(body, 120),
		},
	})
	return entry, nil
}

// Summary aggregates ticket counts for reporting.
type Summary struct {
	Total      int                           `json:"total"`
	Open       int                           `json:"open"`
	Closed     int                           `json:"closed"`
	ByStatus   map[domain.TicketStatus]int   `json:"by_status"`
	ByPriority map[domain.TicketPriority]int `json:"by_priority"`
	ByCategory map[domain.TicketCategory]int `json:"by_category"`
}

// Summarize builds the report for actors holding view_reports.
func (s *TicketService) Summarize(ctx context.Context, actor Actor) (*Summary, error) {
	if !s.permissions.HasPermission(actor.Role, domain.PermViewReports) {
		return nil, util.NewPermissionDenied("")
	}
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{Limit: repository.NoLimit})
	if err != nil {
		return nil, util.NewStoreError(err)
	}

	summary := &Summary{
		ByStatus:   make(map[domain.TicketStatus]int),
		ByPriority: make(map[domain.TicketPriority]int),
		ByCategory: make(map[domain.TicketCategory]int),
	}
	for i := range tickets {
		ticket := &tickets[i]
		summary.Total++
		summary.ByStatus[ticket.Status]++
		summary.ByPriority[ticket.Priority]++
		summary.ByCategory[ticket.Category]++
		if ticket.Status == domain.TicketStatusClosed {
			summary.Closed++
		} else {
			summary.Open++
		}
	}
	return summary, nil
}

// Logs returns the audit trail for a ticket the actor may see.
func (s *TicketService) Logs(ctx context.Context, actor Actor, ticketID string) ([]domain.TicketLogEntry, error) {
	_, entries, err := s.Get(ctx, actor, ticketID)
	return entries, err
}

func (s *TicketService) getTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, util.NewStoreError(err)
	}
	return ticket, nil
}

func (s *TicketService) nextTicketID(ctx context.Context) (string, error) {
	day := s.clock().Format("20060102")
	seq, err := s.keys.NextSequence(ctx, day)
	if err != nil {
		return "", util.NewStoreError(err)
	}
	return fmt.Sprintf("T%s-%02d", day, seq), nil
}

func (s *TicketService) trySuggest(ctx context.Context, title, description string) *suggest.Suggestion {
	suggestion, err := s.suggester.Suggest(ctx, suggest.Input{Title: title, Description: description})
	if err != nil {
		s.logger.Warn("suggestion call failed", zap.Error(err))
		return nil
	}
	return suggestion
}

func (s *TicketService) appendLog(ctx context.Context, ticketID string, actor Actor, logType domain.TicketLogType, message string) {
	entry := &domain.TicketLogEntry{
		ID:        uuid.NewString(),
		TicketID:  ticketID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Type:      logType,
		Message:   message,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		s.logger.Error("failed to append ticket log",
			zap.String("ticket_id", ticketID), zap.Error(err))
	}
}

func (s *TicketService) publishStatusChange(ctx context.Context, actor Actor, ticket *domain.Ticket, oldStatus domain.TicketStatus, comment string) {
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    eventActor(actor),
		Payload: events.TicketStatusChangedPayload{
			RequesterID: ticket.RequesterID,
			AssigneeID:  ticket.AssigneeID,
			OldStatus:   oldStatus,
			NewStatus:   ticket.Status,
			Comment:     comment,
		},
	})
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func eventActor(actor Actor) events.Actor {
	return events.Actor{ID: actor.ID, Name: actor.Name, Role: actor.Role}
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
