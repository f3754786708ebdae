// Package memory provides in-memory implementations of the repository
// interfaces. They back the service when no Postgres DSN is configured and
// every package-level test.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// Store bundles the in-memory repositories over one mutex-guarded dataset.
type Store struct {
	mu sync.RWMutex

	users       map[string]domain.User
	tickets     map[string]domain.Ticket
	logs        []domain.TicketLogEntry
	messages    map[string]domain.Message
	permissions map[domain.Role][]domain.Permission

	seq     map[string]int
	now     func() time.Time
	logTick int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[string]domain.User),
		tickets:     make(map[string]domain.Ticket),
		messages:    make(map[string]domain.Message),
		permissions: make(map[domain.Role][]domain.Permission),
		seq:         make(map[string]int),
		now:         time.Now,
	}
}

// SetClock overrides the time source, used by tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return &userStore{s} }

// Tickets returns the ticket repository view of the store.
func (s *Store) Tickets() repository.TicketRepository { return &ticketStore{s} }

// TicketLogs returns the log repository view of the store.
func (s *Store) TicketLogs() repository.TicketLogRepository { return &logStore{s} }

// Messages returns the inbox repository view of the store.
func (s *Store) Messages() repository.MessageRepository { return &messageStore{s} }

// Permissions returns the permission repository view of the store.
func (s *Store) Permissions() repository.PermissionRepository { return &permissionStore{s} }

// NextSequence implements the per-day ticket key allocator.
func (s *Store) NextSequence(ctx context.Context, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[day]++
	return s.seq[day], nil
}

// Advance raises a day counter to at least seq so imported keys are not
// reissued. The counter never moves backwards.
func (s *Store) Advance(ctx context.Context, day string, seq int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.seq[day] {
		s.seq[day] = seq
	}
	return nil
}

// --- users ---

type userStore struct{ s *Store }

func (u *userStore) Create(ctx context.Context, user *domain.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	// Imported entities keep their original timestamps.
	if user.CreatedAt.IsZero() {
		now := u.s.now()
		user.CreatedAt = now
		user.UpdatedAt = now
	}
	u.s.users[user.ID] = *cloneUser(user)
	return nil
}

func (u *userStore) Update(ctx context.Context, user *domain.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = u.s.now()
	u.s.users[user.ID] = *cloneUser(user)
	return nil
}

func (u *userStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(&user), nil
}

func (u *userStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(&user), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *userStore) List(ctx context.Context) ([]domain.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	result := make([]domain.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		result = append(result, *cloneUser(&user))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (u *userStore) Delete(ctx context.Context, id string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(u.s.users, id)
	return nil
}

// --- tickets ---

type ticketStore struct{ s *Store }

func (t *ticketStore) Create(ctx context.Context, ticket *domain.Ticket) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tickets[ticket.ID]; ok {
		return repository.ErrConflict
	}
	if ticket.CreatedAt.IsZero() {
		now := t.s.now()
		ticket.CreatedAt = now
		ticket.UpdatedAt = now
	}
	t.s.tickets[ticket.ID] = *cloneTicket(ticket)
	return nil
}

func (t *ticketStore) Update(ctx context.Context, ticket *domain.Ticket) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tickets[ticket.ID]; !ok {
		return repository.ErrNotFound
	}
	ticket.UpdatedAt = t.s.now()
	t.s.tickets[ticket.ID] = *cloneTicket(ticket)
	return nil
}

func (t *ticketStore) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	ticket, ok := t.s.tickets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneTicket(&ticket), nil
}

func (t *ticketStore) List(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	var result []domain.Ticket
	for _, ticket := range t.s.tickets {
		if !matchesFilter(&ticket, filter) {
			continue
		}
		result = append(result, *cloneTicket(&ticket))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(result) {
		return nil, nil
	}
	end := len(result)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return result[offset:end], nil
}

func (t *ticketStore) Delete(ctx context.Context, id string) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.s.tickets, id)
	return nil
}

func matchesFilter(ticket *domain.Ticket, filter repository.TicketFilter) bool {
	if filter.RequesterID != nil && ticket.RequesterID != *filter.RequesterID {
		return false
	}
	if filter.AssigneeID != nil && !ticket.IsAssignee(*filter.AssigneeID) {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, ticket.Status) {
		return false
	}
	if len(filter.Priorities) > 0 && !containsPriority(filter.Priorities, ticket.Priority) {
		return false
	}
	if len(filter.Categories) > 0 && !containsCategory(filter.Categories, ticket.Category) {
		return false
	}
	if filter.CreatedFrom != nil && ticket.CreatedAt.Before(*filter.CreatedFrom) {
		return false
	}
	if filter.CreatedTo != nil && ticket.CreatedAt.After(*filter.CreatedTo) {
		return false
	}
	if filter.SearchTerm != nil {
		term := strings.ToLower(strings.TrimSpace(*filter.SearchTerm))
		if term != "" &&
			!strings.Contains(strings.ToLower(ticket.Title), term) &&
			!strings.Contains(strings.ToLower(ticket.Description), term) {
			return false
		}
	}
	return true
}

func containsStatus(list []domain.TicketStatus, v domain.TicketStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsPriority(list []domain.TicketPriority, v domain.TicketPriority) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsCategory(list []domain.TicketCategory, v domain.TicketCategory) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// --- logs ---

type logStore struct{ s *Store }

func (l *logStore) Create(ctx context.Context, entry *domain.TicketLogEntry) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if entry.CreatedAt.IsZero() {
		// Monotonic tiebreak keeps append order stable when the clock does
		// not advance between two writes.
		l.s.logTick++
		entry.CreatedAt = l.s.now().Add(time.Duration(l.s.logTick) * time.Nanosecond)
	}
	l.s.logs = append(l.s.logs, *entry)
	return nil
}

func (l *logStore) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketLogEntry, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	var result []domain.TicketLogEntry
	for _, entry := range l.s.logs {
		if entry.TicketID == ticketID {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (l *logStore) DeleteByTicket(ctx context.Context, ticketID string) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	kept := l.s.logs[:0]
	for _, entry := range l.s.logs {
		if entry.TicketID != ticketID {
			kept = append(kept, entry)
		}
	}
	l.s.logs = kept
	return nil
}

// --- messages ---

type messageStore struct{ s *Store }

func (m *messageStore) Append(ctx context.Context, message *domain.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = m.s.now()
	}
	m.s.messages[message.ID] = *message
	return nil
}

func (m *messageStore) ListByRecipient(ctx context.Context, recipientID string) ([]domain.Message, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	var result []domain.Message
	for _, message := range m.s.messages {
		if message.RecipientID == recipientID {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *messageStore) MarkRead(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	message, ok := m.s.messages[id]
	if !ok {
		return repository.ErrNotFound
	}
	message.Read = true
	m.s.messages[id] = message
	return nil
}

func (m *messageStore) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.s.messages, id)
	return nil
}

// --- permissions ---

type permissionStore struct{ s *Store }

func (p *permissionStore) Load(ctx context.Context) (map[domain.Role][]domain.Permission, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	result := make(map[domain.Role][]domain.Permission, len(p.s.permissions))
	for role, perms := range p.s.permissions {
		result[role] = append([]domain.Permission(nil), perms...)
	}
	return result, nil
}

func (p *permissionStore) Save(ctx context.Context, role domain.Role, perms []domain.Permission) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.permissions[role] = append([]domain.Permission(nil), perms...)
	return nil
}

// --- clone helpers ---

func cloneUser(u *domain.User) *domain.User {
	out := *u
	return &out
}

func cloneTicket(t *domain.Ticket) *domain.Ticket {
	out := *t
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		out.AssigneeID = &id
	}
	if t.AssigneeName != nil {
		name := *t.AssigneeName
		out.AssigneeName = &name
	}
	if t.ClosedAt != nil {
		closed := *t.ClosedAt
		out.ClosedAt = &closed
	}
	out.Tags = append([]string(nil), t.Tags...)
	out.Attachments = append([]domain.AttachmentRef(nil), t.Attachments...)
	return &out
}
