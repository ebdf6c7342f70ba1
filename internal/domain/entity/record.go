package entity

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain"
)

// Record es la representación plana y serializable de un producto:
// etiqueta de variante + campos comunes + campos de la variante.
// Los campos de variante son punteros para distinguir ausente de cero
// al validar un documento persistido.
type Record struct {
	Type            string      `json:"type"`
	ProductID       string      `json:"product_id"`
	Name            string      `json:"name"`
	Price           json.Number `json:"price"`
	QuantityInStock *int        `json:"quantity_in_stock"`
	WarrantyYears   *int        `json:"warranty_years,omitempty"`
	Brand           *string     `json:"brand,omitempty"`
	ExpiryDate      *string     `json:"expiry_date,omitempty"`
	Size            *string     `json:"size,omitempty"`
	Material        *string     `json:"material,omitempty"`
}

// ToRecord produce el Record del producto. Es la inversa exacta de
// FromRecord: FromRecord(p.ToRecord()) reconstruye un producto igual.
func (p *Product) ToRecord() Record {
	stock := p.Stock
	rec := Record{
		Type:            string(p.Kind),
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           json.Number(p.Price.String()),
		QuantityInStock: &stock,
	}
	switch p.Kind {
	case KindElectronics:
		warranty := p.WarrantyYears
		brand := p.Brand
		rec.WarrantyYears = &warranty
		rec.Brand = &brand
	case KindGrocery:
		expiry := p.ExpiryDate
		rec.ExpiryDate = &expiry
	case KindClothing:
		size := p.Size
		material := p.Material
		rec.Size = &size
		rec.Material = &material
	}
	return rec
}

// FromRecord reconstruye un producto a partir de su Record, despachando por
// la etiqueta de variante. Etiqueta desconocida, campos requeridos ausentes
// o valores fuera de regla retornan ErrInvalidData.
func FromRecord(rec Record) (*Product, error) {
	if rec.Type == "" {
		return nil, fmt.Errorf("%w: falta la etiqueta type", domain.ErrInvalidData)
	}
	if rec.ProductID == "" {
		return nil, fmt.Errorf("%w: falta product_id", domain.ErrInvalidData)
	}
	if rec.Name == "" {
		return nil, fmt.Errorf("%w: falta name", domain.ErrInvalidData)
	}
	if rec.QuantityInStock == nil {
		return nil, fmt.Errorf("%w: falta quantity_in_stock", domain.ErrInvalidData)
	}
	price, err := decimal.NewFromString(rec.Price.String())
	if err != nil {
		return nil, fmt.Errorf("%w: price inválido o ausente", domain.ErrInvalidData)
	}

	var p *Product
	switch Kind(rec.Type) {
	case KindElectronics:
		if rec.WarrantyYears == nil || rec.Brand == nil {
			return nil, fmt.Errorf("%w: Electronics requiere warranty_years y brand", domain.ErrInvalidData)
		}
		p, err = NewElectronics(rec.ProductID, rec.Name, price, *rec.QuantityInStock, *rec.WarrantyYears, *rec.Brand)
	case KindGrocery:
		if rec.ExpiryDate == nil {
			return nil, fmt.Errorf("%w: Grocery requiere expiry_date", domain.ErrInvalidData)
		}
		p, err = NewGrocery(rec.ProductID, rec.Name, price, *rec.QuantityInStock, *rec.ExpiryDate)
	case KindClothing:
		if rec.Size == nil || rec.Material == nil {
			return nil, fmt.Errorf("%w: Clothing requiere size y material", domain.ErrInvalidData)
		}
		p, err = NewClothing(rec.ProductID, rec.Name, price, *rec.QuantityInStock, *rec.Size, *rec.Material)
	default:
		return nil, fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidData, rec.Type)
	}
	if err != nil {
		// Regla de dominio violada por el registro (precio <= 0, stock negativo,
		// fecha mal formada): en carga se reporta como dato inválido.
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidData, err)
	}
	return p, nil
}
