package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/jsonfile"
)

// CatalogUseCase expone las operaciones del inventario detrás de un único
// mutex: un escritor a la vez y lecturas consistentes, suficiente para la
// superficie HTTP multi-cliente.
type CatalogUseCase struct {
	mu    sync.Mutex
	inv   *inventory.Inventory
	store *jsonfile.Store
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(inv *inventory.Inventory, store *jsonfile.Store) *CatalogUseCase {
	return &CatalogUseCase{inv: inv, store: store}
}

// Add valida la entrada, construye la variante y la inserta en el catálogo.
// Si no viene product_id se genera un UUID.
func (uc *CatalogUseCase) Add(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := in.ProductID
	if id == "" {
		id = uuid.New().String()
	}

	var (
		p   *entity.Product
		err error
	)
	switch entity.Kind(in.Type) {
	case entity.KindElectronics:
		p, err = entity.NewElectronics(id, in.Name, in.Price, in.QuantityInStock, in.WarrantyYears, in.Brand)
	case entity.KindGrocery:
		p, err = entity.NewGrocery(id, in.Name, in.Price, in.QuantityInStock, in.ExpiryDate)
	case entity.KindClothing:
		p, err = entity.NewClothing(id, in.Name, in.Price, in.QuantityInStock, in.Size, in.Material)
	default:
		return nil, fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.inv.Add(p); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

// GetByID retorna un producto por id.
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, ok := uc.inv.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

// Remove elimina un producto por id.
func (uc *CatalogUseCase) Remove(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inv.Remove(id)
}

// List retorna el catálogo en orden de inserción. name filtra por subcadena
// del nombre (sin distinguir mayúsculas); kind filtra por variante. Con
// ambos vacíos lista todo.
func (uc *CatalogUseCase) List(name, kind string) (*dto.ProductListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var products []*entity.Product
	switch {
	case kind != "":
		switch entity.Kind(kind) {
		case entity.KindElectronics, entity.KindGrocery, entity.KindClothing:
		default:
			return nil, fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidInput, kind)
		}
		products = uc.inv.SearchByKind(entity.Kind(kind))
	case name != "":
		products = uc.inv.SearchByName(name)
	default:
		products = uc.inv.ListAll()
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// SetPrice cambia el precio de un producto.
func (uc *CatalogUseCase) SetPrice(id string, in dto.UpdatePriceRequest) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	p, ok := uc.inv.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err := p.SetPrice(in.Price); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(p)
	return &out, nil
}

// Sell vende unidades de un producto.
func (uc *CatalogUseCase) Sell(id string, in dto.SellRequest) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.inv.Sell(id, in.Quantity); err != nil {
		return nil, err
	}
	p, _ := uc.inv.Get(id)
	out := dto.ToProductResponse(p)
	return &out, nil
}

// Restock reabastece unidades de un producto.
func (uc *CatalogUseCase) Restock(id string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.inv.Restock(id, in.Quantity); err != nil {
		return nil, err
	}
	p, _ := uc.inv.Get(id)
	out := dto.ToProductResponse(p)
	return &out, nil
}

// TotalValue retorna el valor agregado del inventario a dos decimales.
func (uc *CatalogUseCase) TotalValue() dto.InventoryValueResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return dto.InventoryValueResponse{TotalValue: uc.inv.TotalValue().StringFixed(2)}
}

// RemoveExpired elimina los Grocery vencidos a hoy y retorna sus ids.
func (uc *CatalogUseCase) RemoveExpired() dto.SweepResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	removed := uc.inv.RemoveExpired(time.Now())
	if removed == nil {
		removed = []string{}
	}
	return dto.SweepResponse{Removed: removed, Count: len(removed)}
}

// Save serializa el catálogo completo al archivo configurado.
func (uc *CatalogUseCase) Save() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.store.Write(uc.inv.Records())
}

// Load reemplaza el catálogo con el contenido del archivo configurado.
// La carga es todo-o-nada: si el documento trae registros inválidos el
// catálogo actual queda intacto.
func (uc *CatalogUseCase) Load() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	records, err := uc.store.Read()
	if err != nil {
		return err
	}
	return uc.inv.LoadRecords(records)
}

// StorePath ruta del archivo de persistencia (para logs y respuestas).
func (uc *CatalogUseCase) StorePath() string {
	return uc.store.Path()
}
