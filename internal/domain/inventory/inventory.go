package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Inventory es la colección de productos indexada por product_id.
// Preserva el orden de inserción para los listados. No es segura para
// uso concurrente: el caso de uso la protege con un único mutex.
type Inventory struct {
	products map[string]*entity.Product
	order    []string
	matcher  *search.Matcher
}

// New construye un inventario vacío.
func New() *Inventory {
	return &Inventory{
		products: make(map[string]*entity.Product),
		// Loose: sin distinguir mayúsculas ni diacríticos ("azucar" encuentra "Azúcar")
		matcher: search.New(language.Und, search.Loose),
	}
}

// Len retorna la cantidad de productos.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Add inserta un producto. Falla con ErrDuplicate si el id ya existe.
func (inv *Inventory) Add(p *entity.Product) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("%w: producto sin id", domain.ErrInvalidInput)
	}
	if _, ok := inv.products[p.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, p.ID)
	}
	inv.products[p.ID] = p
	inv.order = append(inv.order, p.ID)
	return nil
}

// Remove elimina un producto por id. Falla con ErrNotFound si no existe.
func (inv *Inventory) Remove(id string) error {
	if _, ok := inv.products[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	inv.dropFromOrder(id)
	delete(inv.products, id)
	return nil
}

// Get retorna el producto con el id dado, si existe.
func (inv *Inventory) Get(id string) (*entity.Product, bool) {
	p, ok := inv.products[id]
	return p, ok
}

// SearchByName retorna, en orden de inserción, los productos cuyo nombre
// contiene la subcadena dada (sin distinguir mayúsculas ni diacríticos).
func (inv *Inventory) SearchByName(substring string) []*entity.Product {
	pattern := inv.matcher.CompileString(substring)
	var results []*entity.Product
	for _, id := range inv.order {
		p := inv.products[id]
		if start, _ := pattern.IndexString(p.Name); start >= 0 {
			results = append(results, p)
		}
	}
	return results
}

// SearchByKind retorna los productos de la variante dada, en orden de inserción.
func (inv *Inventory) SearchByKind(kind entity.Kind) []*entity.Product {
	var results []*entity.Product
	for _, id := range inv.order {
		if p := inv.products[id]; p.Kind == kind {
			results = append(results, p)
		}
	}
	return results
}

// ListAll retorna todos los productos en orden de inserción.
func (inv *Inventory) ListAll() []*entity.Product {
	results := make([]*entity.Product, 0, len(inv.order))
	for _, id := range inv.order {
		results = append(results, inv.products[id])
	}
	return results
}

// Sell vende quantity unidades del producto id.
func (inv *Inventory) Sell(id string, quantity int) error {
	p, ok := inv.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return p.Sell(quantity)
}

// Restock reabastece quantity unidades del producto id.
func (inv *Inventory) Restock(id string, quantity int) error {
	p, ok := inv.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return p.Restock(quantity)
}

// TotalValue suma precio * stock de todos los productos; cero si está vacío.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, id := range inv.order {
		total = total.Add(inv.products[id].TotalValue())
	}
	return total
}

// RemoveExpired elimina todos los Grocery vencidos a la fecha dada y
// retorna sus ids en orden de inserción. Las demás variantes no se tocan.
func (inv *Inventory) RemoveExpired(now time.Time) []string {
	var removed []string
	for _, id := range append([]string(nil), inv.order...) {
		p := inv.products[id]
		if p.Kind == entity.KindGrocery && p.ExpiredAt(now) {
			inv.dropFromOrder(id)
			delete(inv.products, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Records retorna la representación serializable de todo el catálogo,
// en orden de inserción.
func (inv *Inventory) Records() []entity.Record {
	records := make([]entity.Record, 0, len(inv.order))
	for _, id := range inv.order {
		records = append(records, inv.products[id].ToRecord())
	}
	return records
}

// LoadRecords reemplaza el contenido del inventario con los registros dados.
// La carga es todo-o-nada: primero se reconstruye y valida el documento
// completo (incluida la unicidad de ids); ante cualquier ErrInvalidData el
// contenido actual queda intacto.
func (inv *Inventory) LoadRecords(records []entity.Record) error {
	products := make(map[string]*entity.Product, len(records))
	order := make([]string, 0, len(records))
	for i, rec := range records {
		p, err := entity.FromRecord(rec)
		if err != nil {
			return fmt.Errorf("registro %d: %w", i, err)
		}
		if _, ok := products[p.ID]; ok {
			return fmt.Errorf("registro %d: %w: id repetido en el documento %q", i, domain.ErrInvalidData, p.ID)
		}
		products[p.ID] = p
		order = append(order, p.ID)
	}
	inv.products = products
	inv.order = order
	return nil
}

func (inv *Inventory) dropFromOrder(id string) {
	for i, existing := range inv.order {
		if existing == id {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}
