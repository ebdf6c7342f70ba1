package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain"
)

// Kind identifica la variante de un producto. El conjunto es cerrado:
// Electronics, Grocery y Clothing.
type Kind string

const (
	KindElectronics Kind = "Electronics"
	KindGrocery     Kind = "Grocery"
	KindClothing    Kind = "Clothing"
)

// ExpiryLayout formato ISO de la fecha de vencimiento de un Grocery.
const ExpiryLayout = "2006-01-02"

// Product representa un producto del catálogo. Los campos comunes aplican
// a toda variante; los específicos solo tienen significado según Kind.
// El stock se muta únicamente vía Sell/Restock y el precio vía SetPrice.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal // siempre > 0
	Stock int             // siempre >= 0
	Kind  Kind

	// Electronics
	WarrantyYears int
	Brand         string

	// Grocery
	ExpiryDate string // YYYY-MM-DD

	// Clothing
	Size     string
	Material string
}

func newProduct(kind Kind, id, name string, price decimal.Decimal, stock int) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser positivo", domain.ErrInvalidInput)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: el stock inicial no puede ser negativo", domain.ErrInvalidInput)
	}
	return &Product{ID: id, Name: name, Price: price, Stock: stock, Kind: kind}, nil
}

// NewElectronics construye un producto electrónico con todo su estado inicial.
func NewElectronics(id, name string, price decimal.Decimal, stock, warrantyYears int, brand string) (*Product, error) {
	p, err := newProduct(KindElectronics, id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if warrantyYears < 0 {
		return nil, fmt.Errorf("%w: warranty_years no puede ser negativo", domain.ErrInvalidInput)
	}
	p.WarrantyYears = warrantyYears
	p.Brand = brand
	return p, nil
}

// NewGrocery construye un producto de abarrotes. La fecha de vencimiento
// debe venir en formato YYYY-MM-DD.
func NewGrocery(id, name string, price decimal.Decimal, stock int, expiryDate string) (*Product, error) {
	p, err := newProduct(KindGrocery, id, name, price, stock)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(ExpiryLayout, expiryDate); err != nil {
		return nil, fmt.Errorf("%w: expiry_date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	p.ExpiryDate = expiryDate
	return p, nil
}

// NewClothing construye un producto de ropa.
func NewClothing(id, name string, price decimal.Decimal, stock int, size, material string) (*Product, error) {
	p, err := newProduct(KindClothing, id, name, price, stock)
	if err != nil {
		return nil, err
	}
	p.Size = size
	p.Material = material
	return p, nil
}

// Restock suma amount unidades al stock. El monto debe ser positivo.
func (p *Product) Restock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: la cantidad a reabastecer debe ser positiva", domain.ErrInvalidInput)
	}
	p.Stock += amount
	return nil
}

// Sell descuenta quantity unidades del stock. Si la cantidad supera el
// stock disponible retorna OutOfStockError y no modifica nada.
func (p *Product) Sell(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: la cantidad a vender debe ser positiva", domain.ErrInvalidInput)
	}
	if quantity > p.Stock {
		return &domain.OutOfStockError{Available: p.Stock, Requested: quantity}
	}
	p.Stock -= quantity
	return nil
}

// SetPrice reemplaza el precio; debe ser positivo. En caso de error el
// precio anterior queda intacto.
func (p *Product) SetPrice(newPrice decimal.Decimal) error {
	if !newPrice.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser positivo", domain.ErrInvalidInput)
	}
	p.Price = newPrice
	return nil
}

// TotalValue retorna precio * stock.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ExpiredAt indica si un Grocery ya venció en la fecha dada (estrictamente
// posterior al día de vencimiento). Para las demás variantes siempre es false.
func (p *Product) ExpiredAt(t time.Time) bool {
	if p.Kind != KindGrocery {
		return false
	}
	expiry, err := time.Parse(ExpiryLayout, p.ExpiryDate)
	if err != nil {
		return false
	}
	ty, tm, td := t.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return day.After(expiry)
}

// IsExpired es ExpiredAt con la fecha actual.
func (p *Product) IsExpired() bool {
	return p.ExpiredAt(time.Now())
}

// Describe retorna el resumen legible del producto según su variante.
// Para Grocery agrega el marcador (EXPIRED) si ya venció.
func (p *Product) Describe() string {
	switch p.Kind {
	case KindElectronics:
		return fmt.Sprintf("Electronics - ID: %s, Name: %s, Brand: %s, Price: $%s, Warranty: %d years, Stock: %d",
			p.ID, p.Name, p.Brand, p.Price.StringFixed(2), p.WarrantyYears, p.Stock)
	case KindGrocery:
		expired := ""
		if p.IsExpired() {
			expired = " (EXPIRED)"
		}
		return fmt.Sprintf("Grocery - ID: %s, Name: %s, Price: $%s, Expiry: %s%s, Stock: %d",
			p.ID, p.Name, p.Price.StringFixed(2), p.ExpiryDate, expired, p.Stock)
	case KindClothing:
		return fmt.Sprintf("Clothing - ID: %s, Name: %s, Size: %s, Material: %s, Price: $%s, Stock: %d",
			p.ID, p.Name, p.Size, p.Material, p.Price.StringFixed(2), p.Stock)
	}
	return fmt.Sprintf("Product - ID: %s, Name: %s", p.ID, p.Name)
}
