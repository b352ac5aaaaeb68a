package analytics

import (
	"sync"

	"nextpdv/internal/models"
)

// Board guarda as vendas carregadas, o período selecionado e o último snapshot.
type Board struct {
	mu       sync.RWMutex
	agg      *Aggregator
	stock    StockPolicy
	compare  bool
	sales    []models.Sale
	products []models.Product
	period   Period
	snapshot Snapshot
	loaded   bool
}

func NewBoard(agg *Aggregator, stock StockPolicy, compare bool) *Board {
	return &Board{agg: agg, stock: stock, compare: compare, period: PeriodDay}
}

// Load substitui os dados e recalcula. Em erro de busca o chamador não chama Load,
// então o estado anterior continua valendo.
func (b *Board) Load(sales []models.Sale, products []models.Product) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sales = sales
	b.products = products
	b.loaded = true
	b.snapshot = b.agg.Compute(b.sales, b.period, b.compare)
	return b.snapshot
}

func (b *Board) Select(p Period) Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.period = p
	b.snapshot = b.agg.Compute(b.sales, b.period, b.compare)
	return b.snapshot
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}

func (b *Board) Period() Period {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.period
}

func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

func (b *Board) Critical() []StockAlert {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stock.Critical(b.products)
}

func (b *Board) LowStock() []StockAlert {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stock.LowStock(b.products)
}
