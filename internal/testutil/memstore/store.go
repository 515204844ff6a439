// Package memstore holds in-memory implementations of the domain
// repositories for use case and handler tests.
package memstore

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	bookingdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	leavedomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/leave"
	salondomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	slotdomain "github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Store keeps every table in maps guarded by one mutex. Transactions are
// serialised by txMu; there is no rollback.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	seq  int64

	calls atomic.Int64
	locks []string

	salons   map[string]*models.Salon
	users    map[string]*models.User
	slots    map[string]*models.Slot
	bookings map[string]*models.Booking
	leaves   map[string]*models.Leave
}

func New() *Store {
	return &Store{
		salons:   make(map[string]*models.Salon),
		users:    make(map[string]*models.User),
		slots:    make(map[string]*models.Slot),
		bookings: make(map[string]*models.Booking),
		leaves:   make(map[string]*models.Leave),
	}
}

// Calls is the number of repository calls made so far.
func (s *Store) Calls() int64 { return s.calls.Load() }

// Locks returns the schedule keys locked so far.
func (s *Store) Locks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.locks...)
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return prefix + "-" + strconv.FormatInt(s.seq, 10)
}

func (s *Store) touch() { s.calls.Add(1) }

type txKey struct{}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddSalon(name, slug, tz string) *models.Salon {
	s.mu.Lock()
	defer s.mu.Unlock()

	salon := &models.Salon{ID: s.nextID("salon"), Name: name, Slug: slug, Timezone: tz}
	s.salons[salon.ID] = salon
	return salon
}

func (s *Store) AddUser(salonID *string, name, email, role string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &models.User{ID: s.nextID(role), SalonID: salonID, Name: name, Email: email, Role: role, Active: true}
	s.users[u.ID] = u
	return u
}

// Slot returns a copy of the stored slot, or nil.
func (s *Store) Slot(id string) *models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.slots[id]; ok {
		cp := *v
		return &cp
	}
	return nil
}

func (s *Store) BookingsFor(slotID string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for _, b := range s.bookings {
		if b.SlotID == slotID {
			out = append(out, *b)
		}
	}
	return out
}

func (s *Store) PutSlot(sl models.Slot) *models.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl.ID == "" {
		sl.ID = s.nextID("slot")
	}
	sl.Date = timezone.DateOnly(sl.Date)
	s.slots[sl.ID] = &sl
	cp := sl
	return &cp
}

func (s *Store) PutLeave(l models.Leave) *models.Leave {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = s.nextID("leave")
	}
	l.Date = timezone.DateOnly(l.Date)
	s.leaves[l.ID] = &l
	cp := l
	return &cp
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

type Slots struct{ s *Store }

func (s *Store) Slots() *Slots { return &Slots{s: s} }

func (r *Slots) LockSchedule(_ context.Context, key string) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locks = append(r.s.locks, key)
	return nil
}

func (r *Slots) ListForSchedule(_ context.Context, salonID string, barberID *string, date time.Time) ([]models.Slot, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := slotdomain.ScheduleKey(salonID, barberID, date)
	var out []models.Slot
	for _, sl := range r.s.slots {
		if slotdomain.ScheduleKey(sl.SalonID, sl.BarberID, sl.Date) == key {
			out = append(out, *sl)
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *Slots) Create(_ context.Context, sl *models.Slot) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sl.ID == "" {
		sl.ID = r.s.nextID("slot")
	}
	sl.Date = timezone.DateOnly(sl.Date)
	sl.CreatedAt = time.Now()
	sl.UpdatedAt = sl.CreatedAt
	cp := *sl
	r.s.slots[sl.ID] = &cp
	return nil
}

func (r *Slots) GetByID(_ context.Context, id string) (*models.Slot, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl, ok := r.s.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	cp := *sl
	return &cp, nil
}

func (r *Slots) GetForUpdate(ctx context.Context, id string) (*models.Slot, error) {
	return r.GetByID(ctx, id)
}

func (r *Slots) List(_ context.Context, f slotdomain.Filter) ([]models.Slot, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Slot
	for _, sl := range r.s.slots {
		if f.SalonID != "" && sl.SalonID != f.SalonID {
			continue
		}
		if f.General && sl.BarberID != nil {
			continue
		}
		if !f.General && f.BarberID != nil && (sl.BarberID == nil || *sl.BarberID != *f.BarberID) {
			continue
		}
		if f.Date != nil && !sl.Date.Equal(timezone.DateOnly(*f.Date)) {
			continue
		}
		if f.Status != nil && sl.Status != string(*f.Status) {
			continue
		}
		out = append(out, *sl)
	}
	sortSlots(out)
	return out, nil
}

func (r *Slots) UpdateStatus(_ context.Context, id string, status slotdomain.Status) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl, ok := r.s.slots[id]
	if !ok {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	sl.Status = string(status)
	return nil
}

func (r *Slots) MarkBooked(_ context.Context, id string) (bool, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sl, ok := r.s.slots[id]
	if !ok || sl.Status != string(slotdomain.StatusAvailable) {
		return false, nil
	}
	sl.Status = string(slotdomain.StatusBooked)
	return true, nil
}

func (r *Slots) Delete(_ context.Context, id string) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.slots[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeSlotNotFound)
	}
	delete(r.s.slots, id)
	return nil
}

func sortSlots(out []models.Slot) {
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].FromMinute < out[j].FromMinute
	})
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

type Bookings struct{ s *Store }

func (s *Store) Bookings() *Bookings { return &Bookings{s: s} }

func (r *Bookings) Create(_ context.Context, b *models.Booking) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.bookings {
		if existing.SlotID == b.SlotID {
			return errDuplicate("bookings.slot_id")
		}
	}
	if b.ID == "" {
		b.ID = r.s.nextID("booking")
	}
	b.CreatedAt = time.Now()
	cp := *b
	r.s.bookings[b.ID] = &cp
	return nil
}

func (r *Bookings) GetBySlot(_ context.Context, slotID string) (*models.Booking, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.SlotID == slotID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *Bookings) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.UserID == userID }), nil
}

func (r *Bookings) ListBySalon(_ context.Context, salonID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.SalonID == salonID }), nil
}

func (r *Bookings) list(keep func(*models.Booking) bool) []models.Booking {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// --------------------------------------------------
// Leaves
// --------------------------------------------------

type Leaves struct{ s *Store }

func (s *Store) Leaves() *Leaves { return &Leaves{s: s} }

func (r *Leaves) Create(_ context.Context, l *models.Leave) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if l.ID == "" {
		l.ID = r.s.nextID("leave")
	}
	l.Date = timezone.DateOnly(l.Date)
	l.CreatedAt = time.Now()
	cp := *l
	r.s.leaves[l.ID] = &cp
	return nil
}

func (r *Leaves) GetByID(_ context.Context, id string) (*models.Leave, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.leaves[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeLeaveNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *Leaves) Update(_ context.Context, l *models.Leave) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.leaves[l.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeLeaveNotFound)
	}
	cp := *l
	r.s.leaves[l.ID] = &cp
	return nil
}

func (r *Leaves) ListForBarberOnDate(_ context.Context, barberID string, date time.Time) ([]models.Leave, error) {
	day := timezone.DateOnly(date)
	return r.list(func(l *models.Leave) bool {
		return l.BarberID == barberID && l.Date.Equal(day)
	}), nil
}

func (r *Leaves) ListBySalon(_ context.Context, salonID string, status *leavedomain.Status) ([]models.Leave, error) {
	return r.list(func(l *models.Leave) bool {
		return l.SalonID == salonID && (status == nil || l.Status == string(*status))
	}), nil
}

func (r *Leaves) ListByBarber(_ context.Context, barberID string) ([]models.Leave, error) {
	return r.list(func(l *models.Leave) bool { return l.BarberID == barberID }), nil
}

func (r *Leaves) list(keep func(*models.Leave) bool) []models.Leave {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.Leave
	for _, l := range r.s.leaves {
		if keep(l) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// --------------------------------------------------
// Salons and users
// --------------------------------------------------

type Salons struct{ s *Store }

func (s *Store) Salons() *Salons { return &Salons{s: s} }

func (r *Salons) GetSalonByID(_ context.Context, id string) (*models.Salon, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v, ok := r.s.salons[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
}

func (r *Salons) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, v := range r.s.salons {
		if v.Slug == strings.ToLower(slug) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
}

func (r *Salons) UpdateSalon(_ context.Context, salon *models.Salon) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.salons[salon.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeSalonNotFound)
	}
	cp := *salon
	r.s.salons[salon.ID] = &cp
	return nil
}

func (r *Salons) CreateSalonWithOwner(_ context.Context, salon *models.Salon, owner *models.User) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, v := range r.s.salons {
		if v.Slug == salon.Slug {
			return httperr.ErrBusiness(httperr.CodeSlugTaken)
		}
	}
	if r.s.emailTaken(owner.Email) {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	salon.ID = r.s.nextID("salon")
	sc := *salon
	r.s.salons[salon.ID] = &sc

	owner.ID = r.s.nextID("owner")
	owner.SalonID = &salon.ID
	oc := *owner
	r.s.users[owner.ID] = &oc
	return nil
}

func (r *Salons) CreateUser(_ context.Context, u *models.User) error {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.emailTaken(u.Email) {
		return httperr.ErrBusiness(httperr.CodeEmailTaken)
	}
	if u.ID == "" {
		u.ID = r.s.nextID(u.Role)
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *Salons) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if v, ok := r.s.users[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
}

func (r *Salons) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, v := range r.s.users {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
}

func (r *Salons) GetBarber(_ context.Context, salonID, barberID string) (*models.User, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[barberID]
	if !ok || u.Role != models.RoleBarber || !u.Active || u.SalonID == nil || *u.SalonID != salonID {
		return nil, httperr.ErrBusiness(httperr.CodeBarberNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *Salons) ListBarbers(_ context.Context, salonID, query string) ([]models.User, error) {
	r.s.touch()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.User
	for _, u := range r.s.users {
		if u.Role != models.RoleBarber || u.SalonID == nil || *u.SalonID != salonID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Name), query) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) emailTaken(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

type errDuplicate string

func (e errDuplicate) Error() string { return "duplicate key " + string(e) }

// Compile-time checks
var (
	_ slotdomain.Repository    = (*Slots)(nil)
	_ bookingdomain.Repository = (*Bookings)(nil)
	_ leavedomain.Repository   = (*Leaves)(nil)
	_ salondomain.Repository   = (*Salons)(nil)
)
