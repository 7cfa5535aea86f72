package memory

import (
	"context"
	"slices"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds orders and number transfers. Repositories created outside a transaction lock
// the store per call; a transaction holds the lock for its whole callback and works on copies
// that are swapped in on commit.
type Store struct {
	mu       sync.RWMutex
	orders   map[uuid.UUID]*entity.Order
	portings map[string]*entity.PortingStatus
}

// NewStore creates an empty order and porting store.
func NewStore() *Store {
	return &Store{
		orders:   make(map[uuid.UUID]*entity.Order),
		portings: make(map[string]*entity.PortingStatus),
	}
}

// tables is the data a repository reads and writes.
type tables struct {
	orders   map[uuid.UUID]*entity.Order
	portings map[string]*entity.PortingStatus
}

// NewOrderRepository returns an order repository backed by the store.
func NewOrderRepository(s *Store) repository.OrderRepository {
	return &orderRepository{store: s}
}

// NewPortingRepository returns a porting repository backed by the store.
func NewPortingRepository(s *Store) repository.PortingRepository {
	return &portingRepository{store: s}
}

// NewTransactionManager returns a transaction manager over the store.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

// access runs fn against the live tables, or against the transaction copy when tx is set.
func (s *Store) access(tx *tables, write bool, fn func(t *tables) error) error {
	if tx != nil {
		return fn(tx)
	}

	if write {
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	return fn(&tables{orders: s.orders, portings: s.portings})
}

type orderRepository struct {
	store *Store
	tx    *tables
}

// CreateOrder stores a copy of the order.
func (r *orderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	return r.store.access(r.tx, true, func(t *tables) error {
		if _, ok := t.orders[order.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicateOrder, "order %s", order.ID)
		}
		t.orders[order.ID] = cloneOrder(order)

		return nil
	})
}

// FindOrderByID retrieves an order by its ID.
func (r *orderRepository) FindOrderByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order
	err := r.store.access(r.tx, false, func(t *tables) error {
		order, ok := t.orders[id]
		if !ok {
			return errors.Wrapf(repository.ErrOrderNotFound, "order %s", id)
		}
		found = cloneOrder(order)

		return nil
	})

	return found, err
}

// FindOrdersBySession retrieves the orders of a session, oldest first.
func (r *orderRepository) FindOrdersBySession(_ context.Context, sessionID uuid.UUID) ([]*entity.Order, error) {
	var found []*entity.Order
	err := r.store.access(r.tx, false, func(t *tables) error {
		for _, order := range t.orders {
			if order.SessionID == sessionID {
				found = append(found, cloneOrder(order))
			}
		}

		return nil
	})
	slices.SortFunc(found, func(a, b *entity.Order) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return found, err
}

type portingRepository struct {
	store *Store
	tx    *tables
}

// CreatePorting stores a copy of the transfer. A phone number can only have one open transfer.
func (r *portingRepository) CreatePorting(_ context.Context, porting *entity.PortingStatus) error {
	return r.store.access(r.tx, true, func(t *tables) error {
		if _, ok := t.portings[porting.ID]; ok {
			return errors.Wrapf(repository.ErrDuplicatePorting, "porting %s", porting.ID)
		}
		for _, existing := range t.portings {
			if existing.PhoneNumber == porting.PhoneNumber && !existing.Done() {
				return errors.Wrapf(repository.ErrDuplicatePorting, "number %s", porting.PhoneNumber)
			}
		}
		t.portings[porting.ID] = clonePorting(porting)

		return nil
	})
}

// FindPortingByID retrieves a transfer by its ID.
func (r *portingRepository) FindPortingByID(_ context.Context, id string) (*entity.PortingStatus, error) {
	var found *entity.PortingStatus
	err := r.store.access(r.tx, false, func(t *tables) error {
		porting, ok := t.portings[id]
		if !ok {
			return errors.Wrapf(repository.ErrPortingNotFound, "porting %s", id)
		}
		found = clonePorting(porting)

		return nil
	})

	return found, err
}

// UpdatePorting replaces a stored transfer.
func (r *portingRepository) UpdatePorting(_ context.Context, porting *entity.PortingStatus) error {
	return r.store.access(r.tx, true, func(t *tables) error {
		if _, ok := t.portings[porting.ID]; !ok {
			return errors.Wrapf(repository.ErrPortingNotFound, "porting %s", porting.ID)
		}
		t.portings[porting.ID] = clonePorting(porting)

		return nil
	})
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Lines = slices.Clone(o.Lines)

	return &c
}

func clonePorting(p *entity.PortingStatus) *entity.PortingStatus {
	c := *p
	c.Steps = make([]entity.PortingStep, len(p.Steps))
	for i, step := range p.Steps {
		c.Steps[i] = step
		if step.CompletedAt != nil {
			at := *step.CompletedAt
			c.Steps[i].CompletedAt = &at
		}
	}

	return &c
}
