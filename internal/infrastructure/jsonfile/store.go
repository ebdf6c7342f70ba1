// Package jsonfile persiste el catálogo como un único documento JSON
// con la forma {"products": [registro, ...]}.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// Store adaptador de persistencia sobre un archivo JSON.
// No hay escritura atómica ni parcial: un crash a mitad de Write puede
// corromper el archivo (riesgo aceptado y documentado).
type Store struct {
	path string
}

// New construye el store apuntando al archivo dado.
func New(path string) *Store {
	return &Store{path: path}
}

// Path retorna la ruta del archivo.
func (s *Store) Path() string {
	return s.path
}

type document struct {
	Products []entity.Record `json:"products"`
}

type rawDocument struct {
	Products []json.RawMessage `json:"products"`
}

// Write serializa los registros al archivo, indentado.
func (s *Store) Write(records []entity.Record) error {
	doc := document{Products: records}
	if doc.Products == nil {
		doc.Products = []entity.Record{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar catálogo: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", s.path, err)
	}
	return nil
}

// Read lee y decodifica el documento. Los fallos de E/S (archivo ausente,
// ilegible, JSON indecodificable) se retornan tal cual, envueltos; los
// problemas a nivel de registro (tipo de campo equivocado, documento sin
// lista products) se reportan como ErrInvalidData. La validación de campos
// requeridos y reglas de dominio queda en Inventory.LoadRecords.
func (s *Store) Read() ([]entity.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", s.path, err)
	}
	if raw.Products == nil {
		return nil, fmt.Errorf("%w: el documento no tiene la lista products", domain.ErrInvalidData)
	}
	records := make([]entity.Record, 0, len(raw.Products))
	for i, msg := range raw.Products {
		var rec entity.Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("registro %d: %w: %v", i, domain.ErrInvalidData, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
