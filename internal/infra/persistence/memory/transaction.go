package memory

import (
	"context"
	"maps"

	"storefront/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// repositoryFactory hands out repositories bound to one transaction copy.
type repositoryFactory struct {
	store *Store
	tx    *tables
}

// NewOrderRepository returns an order repository bound to the transaction.
func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.store, tx: f.tx}
}

// NewPortingRepository returns a porting repository bound to the transaction.
func (f *repositoryFactory) NewPortingRepository() repository.PortingRepository {
	return &portingRepository{store: f.store, tx: f.tx}
}

// Execute runs fn on a copy of the store and commits the copy when fn returns nil.
// Repositories created outside fn must not be used inside it.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	// Values are replaced, never mutated in place, so shallow map copies are enough.
	tx := &tables{
		orders:   maps.Clone(tm.store.orders),
		portings: maps.Clone(tm.store.portings),
	}
	if err := fn(&repositoryFactory{store: tm.store, tx: tx}); err != nil {
		return err
	}

	tm.store.orders = tx.orders
	tm.store.portings = tx.portings

	return nil
}
