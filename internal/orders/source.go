package orders

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Source supplies the initial order collection.
type Source interface {
	FetchOrders(ctx context.Context) ([]Order, error)
}

// SeedSource serves the built-in demo orders.
type SeedSource struct{}

// FetchOrders implements Source.
func (SeedSource) FetchOrders(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Seed(), nil
}

// FileSource reads orders from a TOML fixture.
type FileSource struct {
	Path string
}

// FetchOrders implements Source.
func (f FileSource) FetchOrders(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(f.Path)
}

// LoadFile parses a fixture of the form
//
//	[[orders]]
//	id = "RR19703494429BCL"
//	status = "en_camino"
//	...
func LoadFile(path string) ([]Order, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("orders file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var doc struct {
		Orders []Order `toml:"orders"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse orders file: %w", err)
	}
	if len(doc.Orders) == 0 {
		return nil, fmt.Errorf("orders file %s has no orders", path)
	}
	return doc.Orders, nil
}

// Seed returns a fresh copy of the demo orders.
func Seed() []Order {
	return slices.Clone(seed)
}

var seed = []Order{
	{
		ID:        "RR19703494429BCL",
		Name:      "Computador HP Intel",
		Kind:      KindLaptop,
		Status:    StatusInTransit,
		ETA:       "17/11/2025",
		Created:   "29/10/2025",
		Shipped:   "14/11/2025",
		Recipient: "Juan Pinto",
		Address:   "La cisterna Av. Marte",
		Phone:     "+56 9 59898207",
	},
	{
		ID:        "RR19703494429BC2",
		Name:      "Redmi buds 6 pro",
		Kind:      KindEarbuds,
		Status:    StatusWarehouse,
		ETA:       "22/11/2025",
		Created:   "29/10/2025",
		Shipped:   "—",
		Recipient: "Juan Pinto",
		Address:   "Las Condes · Martín de Zamora 1234",
		Phone:     "+56 9 1234 5678",
	},
	{
		ID:        "RR19703494429BC3",
		Name:      "Headwear Varsity",
		Kind:      KindCap,
		Status:    StatusReceived,
		ETA:       "—",
		Created:   "29/10/2025",
		Shipped:   "14/11/2025",
		Delivered: "14/11/2025",
		Recipient: "Juan Pinto",
		Address:   "Las Condes · Martín de Zamora 1234",
		Phone:     "+56 9 1234 5678",
	},
}
