package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// CreateProductRequest entrada para agregar un producto al catálogo.
// ProductID es opcional: si viene vacío se genera un UUID.
// Los campos de variante solo aplican según Type.
type CreateProductRequest struct {
	Type            string          `json:"type" validate:"required,oneof=Electronics Grocery Clothing"`
	ProductID       string          `json:"product_id" validate:"omitempty,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock" validate:"min=0"`

	WarrantyYears int    `json:"warranty_years" validate:"min=0"`
	Brand         string `json:"brand"`
	ExpiryDate    string `json:"expiry_date"`
	Size          string `json:"size"`
	Material      string `json:"material"`
}

// SellRequest entrada para vender unidades de un producto.
type SellRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// RestockRequest entrada para reabastecer unidades de un producto.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// UpdatePriceRequest entrada para cambiar el precio de un producto.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto. Los campos de variante se emiten
// solo cuando aplican; Description es el resumen legible (con marcador
// EXPIRED para Grocery vencido).
type ProductResponse struct {
	Type            string          `json:"type"`
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	TotalValue      string          `json:"total_value"`
	Description     string          `json:"description"`

	WarrantyYears *int    `json:"warranty_years,omitempty"`
	Brand         *string `json:"brand,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	Expired       *bool   `json:"expired,omitempty"`
	Size          *string `json:"size,omitempty"`
	Material      *string `json:"material,omitempty"`
}

// ProductListResponse lista de productos en orden de inserción.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// InventoryValueResponse valor agregado del inventario, a dos decimales.
type InventoryValueResponse struct {
	TotalValue string `json:"total_value"`
}

// SweepResponse ids de los Grocery vencidos que fueron eliminados.
type SweepResponse struct {
	Removed []string `json:"removed"`
	Count   int      `json:"count"`
}

// ToProductResponse mapea una entidad a su DTO de salida.
func ToProductResponse(p *entity.Product) ProductResponse {
	out := ProductResponse{
		Type:            string(p.Kind),
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		QuantityInStock: p.Stock,
		TotalValue:      p.TotalValue().StringFixed(2),
		Description:     p.Describe(),
	}
	switch p.Kind {
	case entity.KindElectronics:
		warranty := p.WarrantyYears
		brand := p.Brand
		out.WarrantyYears = &warranty
		out.Brand = &brand
	case entity.KindGrocery:
		expiry := p.ExpiryDate
		expired := p.IsExpired()
		out.ExpiryDate = &expiry
		out.Expired = &expired
	case entity.KindClothing:
		size := p.Size
		material := p.Material
		out.Size = &size
		out.Material = &material
	}
	return out
}
