package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// lockWaitTimeout plazo máximo para adquirir el candado de un producto.
// Dos transacciones que toman los mismos productos en orden cruzado se
// esperarían mutuamente para siempre; al vencer el plazo una aborta con
// ErrConflict, como el detector de deadlocks de PostgreSQL aborta una de las dos.
const lockWaitTimeout = 2 * time.Second

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner simula la transacción de BD sobre el Store: toma candados por
// producto en GetForUpdate y lleva un diario de deshacer. Si fn falla, el diario
// compensa en orden inverso (restaura stocks, elimina la venta insertada) antes
// de soltar los candados, así ningún estado a medias es observable.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados a una transacción en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx := &txState{store: r.store, held: map[string]*sync.Mutex{}}
	defer tx.release()

	productRepo := &ProductStore{store: r.store, tx: tx}
	saleRepo := &SaleStore{store: r.store, tx: tx}

	if err := fn(productRepo, saleRepo); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// txState estado de una transacción en memoria: candados tomados y diario.
type txState struct {
	store *Store
	held  map[string]*sync.Mutex
	order []*sync.Mutex
	undo  []func()
}

// lockProduct toma el candado del producto si esta transacción aún no lo tiene.
// Las líneas se procesan en el orden enviado, así que los candados se toman en
// ese mismo orden. La espera es acotada: si el candado no se consigue dentro de
// lockWaitTimeout la transacción aborta con ErrConflict para que el caller
// reintente o falle, en vez de quedar colgada.
func (tx *txState) lockProduct(id string) error {
	if _, ok := tx.held[id]; ok {
		return nil
	}
	m := tx.store.productLock(id)
	deadline := time.Now().Add(lockWaitTimeout)
	for !m.TryLock() {
		if time.Now().After(deadline) {
			return domain.ErrConflict
		}
		time.Sleep(time.Millisecond)
	}
	tx.held[id] = m
	tx.order = append(tx.order, m)
	return nil
}

// onRollback anota una compensación a ejecutar si la transacción falla.
func (tx *txState) onRollback(fn func()) {
	tx.undo = append(tx.undo, fn)
}

// rollback ejecuta las compensaciones en orden inverso al de aplicación.
func (tx *txState) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

// release suelta los candados en orden inverso al de adquisición.
func (tx *txState) release() {
	for i := len(tx.order) - 1; i >= 0; i-- {
		tx.order[i].Unlock()
	}
	tx.order = nil
	tx.held = nil
}
