package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/rbac"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/repository/memory"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/suggest"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

var (
	employee = service.Actor{ID: "u-emp", Name: "Dana", Role: domain.RoleEmployee}
	tech     = service.Actor{ID: "u-tech", Name: "Rami", Role: domain.RoleTechnician}
	admin    = service.Actor{ID: "u-admin", Name: "Iris", Role: domain.RoleAdmin}
)

type env struct {
	store   *memory.Store
	tickets *service.TicketService
	perms   *rbac.Service
	now     time.Time
}

func (e *env) advance(d time.Duration) { e.now = e.now.Add(d) }

func newEnv(t *testing.T, opts ...func(*service.TicketDependencies)) *env {
	t.Helper()
	e := &env{
		store: memory.NewStore(),
		now:   time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return e.now }
	e.store.SetClock(clock)

	perms, err := rbac.NewService(context.Background(), e.store.Permissions(), zap.NewNop())
	if err != nil {
		t.Fatalf("rbac.NewService: %v", err)
	}
	e.perms = perms

	deps := service.TicketDependencies{
		TicketRepo:   e.store.Tickets(),
		LogRepo:      e.store.TicketLogs(),
		Permissions:  perms,
		KeyAllocator: e.store,
		Dispatcher:   events.NewInMemoryDispatcher(),
		Clock:        clock,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	e.tickets = service.NewTicketService(deps)
	return e
}

func (e *env) create(t *testing.T, actor service.Actor, title string) *domain.Ticket {
	t.Helper()
	ticket, err := e.tickets.Create(context.Background(), actor, service.CreateInput{
		Title:       title,
		Description: "something is broken",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return ticket
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s, got nil error", code)
	}
	if !util.IsCode(err, code) {
		t.Fatalf("want %s, got %v", code, err)
	}
}

func TestCreateAssignsPerDayKeys(t *testing.T) {
	e := newEnv(t)

	first := e.create(t, employee, "no vpn")
	second := e.create(t, employee, "no wifi")
	if first.ID != "T20260901-01" || second.ID != "T20260901-02" {
		t.Errorf("got ids %s, %s", first.ID, second.ID)
	}

	e.advance(24 * time.Hour)
	third := e.create(t, employee, "still no wifi")
	if third.ID != "T20260902-01" {
		t.Errorf("sequence did not reset on day change: %s", third.ID)
	}
}

func TestKeySequenceNotReusedAfterDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first := e.create(t, employee, "first")
	second := e.create(t, employee, "second")
	if err := e.tickets.Delete(ctx, tech, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	third := e.create(t, employee, "third")
	if third.ID != "T20260901-03" {
		t.Errorf("id after delete = %s, want T20260901-03", third.ID)
	}
	survivor, _, err := e.tickets.Get(ctx, tech, second.ID)
	if err != nil {
		t.Fatal(err)
	}
	if survivor.Title != "second" {
		t.Errorf("ticket %s title = %q, want %q", second.ID, survivor.Title, "second")
	}
}

func TestCreateDefaults(t *testing.T) {
	e := newEnv(t)

	ticket := e.create(t, employee, "broken keyboard")
	if ticket.Status != domain.TicketStatusOpen {
		t.Errorf("new ticket status = %s, want OPEN", ticket.Status)
	}
	if ticket.AssigneeID != nil {
		t.Error("new ticket must be unassigned")
	}
	if ticket.Category != domain.TicketCategoryOther {
		t.Errorf("category = %s, want OTHER", ticket.Category)
	}
	if ticket.Priority != domain.TicketPriorityMedium {
		t.Errorf("priority = %s, want MEDIUM", ticket.Priority)
	}
	if ticket.RequesterID != employee.ID {
		t.Errorf("requester = %s", ticket.RequesterID)
	}
}

func TestCreateValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.tickets.Create(ctx, employee, service.CreateInput{Description: "x"})
	wantCode(t, err, util.CodeValidationFailed)

	_, err = e.tickets.Create(ctx, employee, service.CreateInput{Title: "x"})
	wantCode(t, err, util.CodeValidationFailed)

	_, err = e.tickets.Create(ctx, employee, service.CreateInput{
		Title: "x", Description: "y", Category: "LAUNDRY",
	})
	wantCode(t, err, util.CodeValidationFailed)
}

func TestCreateRequiresPermission(t *testing.T) {
	e := newEnv(t)

	_, err := e.tickets.Create(context.Background(),
		service.Actor{ID: "ghost", Role: "MANAGER"},
		service.CreateInput{Title: "x", Description: "y"})
	wantCode(t, err, util.CodePermissionDenied)
}

func TestSelfServiceGuard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	own := e.create(t, tech, "my own machine died")

	if _, err := e.tickets.Take(ctx, tech, own.ID); !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("Take on own ticket: %v", err)
	}
	if _, err := e.tickets.Resolve(ctx, tech, own.ID); !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("Resolve on own ticket: %v", err)
	}
	if _, err := e.tickets.Reject(ctx, tech, own.ID, "nope"); !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("Reject on own ticket: %v", err)
	}
	if err := e.tickets.Delete(ctx, tech, own.ID); !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("Delete on own ticket: %v", err)
	}

	// Elevated permissions do not bypass the guard.
	adminOwn := e.create(t, admin, "admin laptop")
	if _, err := e.tickets.Take(ctx, admin, adminOwn.ID); !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("admin Take on own ticket: %v", err)
	}
}

func TestTakeTransitions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "printer jam")

	taken, err := e.tickets.Take(ctx, tech, ticket.ID)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if taken.Status != domain.TicketStatusInProgress {
		t.Errorf("status = %s", taken.Status)
	}
	if taken.AssigneeID == nil || *taken.AssigneeID != tech.ID {
		t.Error("assignee not set")
	}

	if _, err := e.tickets.Take(ctx, admin, ticket.ID); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("retake of IN_PROGRESS ticket: %v", err)
	}

	// ON_HOLD tickets can be picked up again.
	if _, err := e.tickets.Hold(ctx, tech, ticket.ID); err != nil {
		t.Fatalf("Hold: %v", err)
	}
	retaken, err := e.tickets.Take(ctx, admin, ticket.ID)
	if err != nil {
		t.Fatalf("Take from ON_HOLD: %v", err)
	}
	if retaken.AssigneeID == nil || *retaken.AssigneeID != admin.ID {
		t.Error("assignee not reassigned on retake")
	}

	if _, err := e.tickets.Take(ctx, employee, ticket.ID); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("employee Take: %v", err)
	}
}

func TestHoldRequiresAssignee(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "slow laptop")
	other := service.Actor{ID: "u-tech2", Name: "Noa", Role: domain.RoleTechnician}

	if _, err := e.tickets.Hold(ctx, tech, ticket.ID); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("Hold on OPEN ticket: %v", err)
	}
	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatalf("Take: %v", err)
	}
	if _, err := e.tickets.Hold(ctx, other, ticket.ID); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("Hold by non-assignee: %v", err)
	}
	if _, err := e.tickets.Hold(ctx, tech, ticket.ID); err != nil {
		t.Errorf("Hold by assignee: %v", err)
	}
}

func TestResolveGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Straight from OPEN, without ever being taken.
	open := e.create(t, employee, "direct resolve")
	resolved, err := e.tickets.Resolve(ctx, tech, open.ID)
	if err != nil {
		t.Fatalf("Resolve from OPEN: %v", err)
	}
	if resolved.Status != domain.TicketStatusResolved {
		t.Errorf("status = %s", resolved.Status)
	}
	if resolved.AssigneeID != nil {
		t.Error("Resolve must not touch the assignee")
	}
	if _, err := e.tickets.Resolve(ctx, tech, open.ID); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("double resolve: %v", err)
	}
	if _, err := e.tickets.Resolve(ctx, employee, open.ID); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("employee resolve: %v", err)
	}
}

func TestVerifyGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "verify me")

	if _, err := e.tickets.Verify(ctx, employee, ticket.ID); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("verify before resolve: %v", err)
	}
	if _, err := e.tickets.Resolve(ctx, tech, ticket.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := e.tickets.Verify(ctx, tech, ticket.ID); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("verify by non-requester technician: %v", err)
	}
	verified, err := e.tickets.Verify(ctx, employee, ticket.ID)
	if err != nil {
		t.Fatalf("Verify by requester: %v", err)
	}
	if verified.Status != domain.TicketStatusVerified {
		t.Errorf("status = %s", verified.Status)
	}
	if verified.EditUnlocked {
		t.Error("verify must clear the edit override")
	}
}

func TestRejectGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "duplicate request")

	closed, err := e.tickets.Reject(ctx, tech, ticket.ID, "duplicate of T20260901-01")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if closed.Status != domain.TicketStatusClosed {
		t.Errorf("status = %s", closed.Status)
	}
	if closed.ClosedAt == nil || !closed.ClosedAt.Equal(e.now) {
		t.Error("ClosedAt not stamped")
	}
	if _, err := e.tickets.Reject(ctx, tech, ticket.ID, "again"); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("reject of CLOSED ticket: %v", err)
	}
}

func TestUnlockGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "needs a late fix")

	if _, err := e.tickets.SetUnlocked(ctx, admin, ticket.ID, true); !util.IsCode(err, util.CodeInvalidTransition) {
		t.Errorf("unlock of non-verified ticket: %v", err)
	}

	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Resolve(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Verify(ctx, employee, ticket.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := e.tickets.SetUnlocked(ctx, tech, ticket.ID, true); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("unlock by technician: %v", err)
	}

	remark := "forgot to note the part number"
	if _, err := e.tickets.UpdateTriage(ctx, tech, ticket.ID, service.TriageInput{Remarks: &remark}); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("triage edit on locked verified ticket: %v", err)
	}

	unlocked, err := e.tickets.SetUnlocked(ctx, admin, ticket.ID, true)
	if err != nil {
		t.Fatalf("SetUnlocked: %v", err)
	}
	if unlocked.Status != domain.TicketStatusVerified {
		t.Error("unlock must not change status")
	}
	updated, err := e.tickets.UpdateTriage(ctx, tech, ticket.ID, service.TriageInput{Remarks: &remark})
	if err != nil {
		t.Fatalf("triage edit after unlock: %v", err)
	}
	if updated.Remarks != remark {
		t.Errorf("remarks = %q", updated.Remarks)
	}

	if _, err := e.tickets.SetUnlocked(ctx, admin, ticket.ID, false); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := e.tickets.UpdateTriage(ctx, tech, ticket.ID, service.TriageInput{Remarks: &remark}); err == nil {
		t.Error("triage edit after re-lock should fail")
	}
}

func TestTriageGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "blue screen")
	other := service.Actor{ID: "u-tech2", Name: "Noa", Role: domain.RoleTechnician}

	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}

	problems := "faulty RAM stick"
	if _, err := e.tickets.UpdateTriage(ctx, other, ticket.ID, service.TriageInput{Problems: &problems}); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("triage edit by non-assignee: %v", err)
	}
	updated, err := e.tickets.UpdateTriage(ctx, tech, ticket.ID, service.TriageInput{Problems: &problems})
	if err != nil {
		t.Fatalf("UpdateTriage: %v", err)
	}
	if updated.Problems != problems {
		t.Errorf("problems = %q", updated.Problems)
	}

	logs, err := e.store.TicketLogs().ListByTicket(ctx, ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	last := logs[len(logs)-1]
	if last.Type != domain.LogTypeSystem || last.Message != "problems updated" {
		t.Errorf("missing per-field log, got %s %q", last.Type, last.Message)
	}
}

func TestCommentGuards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "mouse not working")

	before, _ := e.store.TicketLogs().ListByTicket(ctx, ticket.ID)
	if _, err := e.tickets.Comment(ctx, employee, ticket.ID, "   \t\n"); !util.IsCode(err, util.CodeValidationFailed) {
		t.Errorf("whitespace comment: %v", err)
	}
	after, _ := e.store.TicketLogs().ListByTicket(ctx, ticket.ID)
	if len(after) != len(before) {
		t.Error("rejected comment must not persist anything")
	}

	stranger := service.Actor{ID: "u-other", Name: "Kim", Role: domain.RoleEmployee}
	if _, err := e.tickets.Comment(ctx, stranger, ticket.ID, "me too"); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("comment by unrelated employee: %v", err)
	}

	entry, err := e.tickets.Comment(ctx, employee, ticket.ID, "it also beeps")
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if entry.Type != domain.LogTypeComment || entry.ActorID != employee.ID {
		t.Errorf("bad entry %+v", entry)
	}
}

func TestDeleteCascades(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "to be purged")
	if _, err := e.tickets.Comment(ctx, employee, ticket.ID, "context here"); err != nil {
		t.Fatal(err)
	}

	if err := e.tickets.Delete(ctx, tech, ticket.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	logs, err := e.store.TicketLogs().ListByTicket(ctx, ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Errorf("%d log entries survived the delete", len(logs))
	}
	if err := e.tickets.Delete(ctx, tech, ticket.ID); !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("second delete: %v", err)
	}
}

func TestBulkTake(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	open := e.create(t, employee, "open one")
	busy := e.create(t, employee, "busy one")
	own := e.create(t, tech, "tech's own")
	if _, err := e.tickets.Take(ctx, admin, busy.ID); err != nil {
		t.Fatal(err)
	}

	result := e.tickets.BulkTake(ctx, tech, []string{open.ID, busy.ID, own.ID, "T19990101-01"})
	if len(result.Taken) != 1 || result.Taken[0] != open.ID {
		t.Errorf("taken = %v", result.Taken)
	}
	if _, failed := result.Failed[busy.ID]; failed {
		t.Error("already IN_PROGRESS tickets are skipped, not failed")
	}
	if err := result.Failed[own.ID]; !util.IsCode(err, util.CodeSelfServiceForbidden) {
		t.Errorf("own ticket failure = %v", err)
	}
	if err := result.Failed["T19990101-01"]; !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("missing ticket failure = %v", err)
	}
}

func TestListScoping(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	mine := e.create(t, employee, "mine")
	e.create(t, tech, "someone else's")

	own, err := e.tickets.List(ctx, employee, repository.TicketFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(own) != 1 || own[0].ID != mine.ID {
		t.Errorf("employee sees %d tickets", len(own))
	}

	all, err := e.tickets.List(ctx, tech, repository.TicketFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("technician sees %d tickets, want 2", len(all))
	}
}

func TestGetVisibility(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "private matter")
	stranger := service.Actor{ID: "u-other", Name: "Kim", Role: domain.RoleEmployee}

	if _, _, err := e.tickets.Get(ctx, stranger, ticket.ID); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("stranger Get: %v", err)
	}
	if _, _, err := e.tickets.Get(ctx, employee, ticket.ID); err != nil {
		t.Errorf("requester Get: %v", err)
	}
	if _, _, err := e.tickets.Get(ctx, tech, ticket.ID); err != nil {
		t.Errorf("view_all_tickets Get: %v", err)
	}
	if _, _, err := e.tickets.Get(ctx, employee, "T19990101-01"); !util.IsCode(err, util.CodeNotFound) {
		t.Errorf("missing ticket: %v", err)
	}
}

func TestLogOrdering(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ticket := e.create(t, employee, "audit me")
	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Comment(ctx, tech, ticket.ID, "looking into it"); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Resolve(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}

	logs, err := e.tickets.Logs(ctx, employee, ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	wantTypes := []domain.TicketLogType{
		domain.LogTypeSystem,
		domain.LogTypeStatusChange,
		domain.LogTypeComment,
		domain.LogTypeStatusChange,
	}
	if len(logs) != len(wantTypes) {
		t.Fatalf("got %d entries, want %d", len(logs), len(wantTypes))
	}
	for i, entry := range logs {
		if entry.Type != wantTypes[i] {
			t.Errorf("entry %d type = %s, want %s", i, entry.Type, wantTypes[i])
		}
		if i > 0 && entry.CreatedAt.Before(logs[i-1].CreatedAt) {
			t.Errorf("entry %d out of order", i)
		}
	}
}

func TestSummarize(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	a := e.create(t, employee, "one")
	e.create(t, employee, "two")
	if _, err := e.tickets.Reject(ctx, tech, a.ID, "wontfix"); err != nil {
		t.Fatal(err)
	}

	if _, err := e.tickets.Summarize(ctx, employee); !util.IsCode(err, util.CodePermissionDenied) {
		t.Errorf("summarize without view_reports: %v", err)
	}

	summary, err := e.tickets.Summarize(ctx, tech)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 2 || summary.Open != 1 || summary.Closed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.ByStatus[domain.TicketStatusClosed] != 1 {
		t.Errorf("by_status = %v", summary.ByStatus)
	}
	if summary.ByCategory[domain.TicketCategoryOther] != 2 {
		t.Errorf("by_category = %v", summary.ByCategory)
	}
}

type stubSuggester struct {
	suggestion *suggest.Suggestion
	err        error
	calls      int
}

func (s *stubSuggester) Suggest(ctx context.Context, input suggest.Input) (*suggest.Suggestion, error) {
	s.calls++
	return s.suggestion, s.err
}

func TestSuggesterFillsMissingFields(t *testing.T) {
	stub := &stubSuggester{suggestion: &suggest.Suggestion{
		Category: domain.TicketCategoryHardware,
		Priority: domain.TicketPriorityHigh,
	}}
	e := newEnv(t, func(deps *service.TicketDependencies) { deps.Suggester = stub })
	ctx := context.Background()

	ticket, err := e.tickets.Create(ctx, employee, service.CreateInput{
		Title: "screen flickers", Description: "started this morning",
	})
	if err != nil {
		t.Fatal(err)
	}
	if ticket.Category != domain.TicketCategoryHardware || ticket.Priority != domain.TicketPriorityHigh {
		t.Errorf("suggestion not applied: %s/%s", ticket.Category, ticket.Priority)
	}

	// Caller-supplied values always win.
	explicit, err := e.tickets.Create(ctx, employee, service.CreateInput{
		Title: "screen flickers", Description: "again",
		Category: domain.TicketCategorySoftware, Priority: domain.TicketPriorityLow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if explicit.Category != domain.TicketCategorySoftware || explicit.Priority != domain.TicketPriorityLow {
		t.Errorf("explicit values overridden: %s/%s", explicit.Category, explicit.Priority)
	}
}

func TestSuggesterFailureDoesNotBlockCreation(t *testing.T) {
	stub := &stubSuggester{err: errors.New("connection refused")}
	e := newEnv(t, func(deps *service.TicketDependencies) { deps.Suggester = stub })

	ticket, err := e.tickets.Create(context.Background(), employee, service.CreateInput{
		Title: "no sound", Description: "speakers silent",
	})
	if err != nil {
		t.Fatalf("creation blocked by suggester failure: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("suggester called %d times", stub.calls)
	}
	if ticket.Category != domain.TicketCategoryOther || ticket.Priority != domain.TicketPriorityMedium {
		t.Errorf("defaults not applied: %s/%s", ticket.Category, ticket.Priority)
	}
}

func TestFullLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ticket := e.create(t, employee, "laptop will not boot")
	if _, err := e.tickets.Take(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	problems := "dead battery"
	if _, err := e.tickets.UpdateTriage(ctx, tech, ticket.ID, service.TriageInput{Problems: &problems}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.tickets.Resolve(ctx, tech, ticket.ID); err != nil {
		t.Fatal(err)
	}
	final, err := e.tickets.Verify(ctx, employee, ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	if final.Status != domain.TicketStatusVerified {
		t.Fatalf("final status = %s", final.Status)
	}
	if final.AssigneeID == nil || *final.AssigneeID != tech.ID {
		t.Error("assignee lost along the way")
	}

	logs, err := e.tickets.Logs(ctx, employee, ticket.ID)
	if err != nil {
		t.Fatal(err)
	}
	// created, taken, triage, resolved, verified
	if len(logs) != 5 {
		for _, entry := range logs {
			t.Logf("%s %q", entry.Type, entry.Message)
		}
		t.Fatalf("got %d log entries, want 5", len(logs))
	}
}
