package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// Snapshot is the full-store export. Importing a snapshot into a fresh store
// reproduces every entity field for field.
type Snapshot struct {
	SchemaVersion int                                 `json:"schema_version"`
	ExportedAt    time.Time                           `json:"exported_at"`
	Users         []domain.User                       `json:"users"`
	Tickets       []domain.Ticket                     `json:"tickets"`
	Logs          []domain.TicketLogEntry             `json:"logs"`
	Messages      []domain.Message                    `json:"messages"`
	Permissions   map[domain.Role][]domain.Permission `json:"permissions"`
}

// ExportService moves whole datasets in and out of the store.
type ExportService struct {
	users       repository.UserRepository
	tickets     repository.TicketRepository
	logs        repository.TicketLogRepository
	messages    repository.MessageRepository
	permissions repository.PermissionRepository
	keys        TicketKeyAllocator
}

// ExportDependencies bundles the repositories. Keys receives the key
// allocator so an import can push the per-day counters past the keys it
// loads.
type ExportDependencies struct {
	UserRepo       repository.UserRepository
	TicketRepo     repository.TicketRepository
	LogRepo        repository.TicketLogRepository
	MessageRepo    repository.MessageRepository
	PermissionRepo repository.PermissionRepository
	Keys           TicketKeyAllocator
}

// NewExportService constructs the service.
func NewExportService(deps ExportDependencies) *ExportService {
	return &ExportService{
		users:       deps.UserRepo,
		tickets:     deps.TicketRepo,
		logs:        deps.LogRepo,
		messages:    deps.MessageRepo,
		permissions: deps.PermissionRepo,
		keys:        deps.Keys,
	}
}

// Export collects every entity into a snapshot.
func (s *ExportService) Export(ctx context.Context) (*Snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	tickets, err := s.tickets.List(ctx, repository.TicketFilter{Limit: repository.NoLimit})
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })

	var logs []domain.TicketLogEntry
	var messages []domain.Message
	for i := range tickets {
		entries, err := s.logs.ListByTicket(ctx, tickets[i].ID)
		if err != nil {
			return nil, util.NewStoreError(err)
		}
		logs = append(logs, entries...)
	}
	for i := range users {
		inbox, err := s.messages.ListByRecipient(ctx, users[i].ID)
		if err != nil {
			return nil, util.NewStoreError(err)
		}
		messages = append(messages, inbox...)
	}

	permissions, err := s.permissions.Load(ctx)
	if err != nil {
		return nil, util.NewStoreError(err)
	}

	return &Snapshot{
		SchemaVersion: persistence.SchemaVersion,
		ExportedAt:    time.Now(),
		Users:         users,
		Tickets:       tickets,
		Logs:          logs,
		Messages:      messages,
		Permissions:   permissions,
	}, nil
}

// Import loads a snapshot into the store. A snapshot written by newer code is
// refused rather than partially understood.
func (s *ExportService) Import(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return util.NewValidationError("snapshot required", nil)
	}
	if snapshot.SchemaVersion > persistence.SchemaVersion {
		return util.NewValidationError("snapshot schema version is newer than this service supports",
			map[string]any{"snapshot": snapshot.SchemaVersion, "supported": persistence.SchemaVersion})
	}

	for i := range snapshot.Users {
		user := snapshot.Users[i]
		if err := s.users.Create(ctx, &user); err != nil {
			return util.NewStoreError(err)
		}
	}
	for i := range snapshot.Tickets {
		ticket := snapshot.Tickets[i]
		if err := s.tickets.Create(ctx, &ticket); err != nil {
			return util.NewStoreError(err)
		}
	}
	if err := s.advanceKeySequences(ctx, snapshot.Tickets); err != nil {
		return err
	}
	for i := range snapshot.Logs {
		entry := snapshot.Logs[i]
		if err := s.logs.Create(ctx, &entry); err != nil {
			return util.NewStoreError(err)
		}
	}
	for i := range snapshot.Messages {
		message := snapshot.Messages[i]
		if err := s.messages.Append(ctx, &message); err != nil {
			return util.NewStoreError(err)
		}
	}
	for role, perms := range snapshot.Permissions {
		if err := s.permissions.Save(ctx, role, perms); err != nil {
			return util.NewStoreError(err)
		}
	}
	return nil
}

// advanceKeySequences pushes the per-day key counters past the highest
// imported ticket key, so tickets created after an import never collide with
// imported ids.
func (s *ExportService) advanceKeySequences(ctx context.Context, tickets []domain.Ticket) error {
	if s.keys == nil {
		return nil
	}
	highest := make(map[string]int)
	for i := range tickets {
		day, seq, ok := parseTicketKey(tickets[i].ID)
		if ok && seq > highest[day] {
			highest[day] = seq
		}
	}
	for day, seq := range highest {
		if err := s.keys.Advance(ctx, day, seq); err != nil {
			return util.NewStoreError(err)
		}
	}
	return nil
}

// parseTicketKey splits a T<YYYYMMDD>-<NN> ticket id into its day key and
// sequence number.
func parseTicketKey(id string) (day string, seq int, ok bool) {
	if len(id) < len("T20060102-01") || id[0] != 'T' || id[9] != '-' {
		return "", 0, false
	}
	day = id[1:9]
	if _, err := time.Parse("20060102", day); err != nil {
		return "", 0, false
	}
	seq, err := strconv.Atoi(id[10:])
	if err != nil || seq < 1 {
		return "", 0, false
	}
	return day, seq, true
}
