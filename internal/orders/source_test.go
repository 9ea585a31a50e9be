package orders

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedSource_ReturnsFreshCopy(t *testing.T) {
	got, err := SeedSource{}.FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	got[0].Status = StatusReturned
	if Seed()[0].Status != StatusInTransit {
		t.Fatalf("Seed should not share backing array with callers")
	}
}

func TestSeedSource_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (SeedSource{}).FetchOrders(ctx); err == nil {
		t.Fatalf("FetchOrders with cancelled context returned nil error")
	}
}

func TestLoadFile_ParsesFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.toml")
	if err := os.WriteFile(path, []byte(`
[[orders]]
id = "A1"
name = "Teclado"
kind = "other"
status = "en_bodega"
eta = "01/12/2026"

[[orders]]
id = "A2"
name = "Gorro"
kind = "cap"
status = "recibido"
delivered = "02/12/2026"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := FileSource{Path: path}.FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "A1" || got[0].Status != StatusWarehouse || got[0].ETA != "01/12/2026" {
		t.Fatalf("got[0] = %+v", got[0])
	}
	if got[1].Kind != KindCap || got[1].Delivered != "02/12/2026" {
		t.Fatalf("got[1] = %+v", got[1])
	}

	s, err := NewStore(got)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile("  "); err == nil {
		t.Fatalf("LoadFile(blank) returned nil error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("LoadFile(missing) returned nil error")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte(`[[orders]`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadFile(bad)
	if err == nil || !strings.Contains(err.Error(), "parse orders file") {
		t.Fatalf("LoadFile(bad) err = %v, want parse orders file", err)
	}

	empty := filepath.Join(dir, "empty.toml")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Fatalf("LoadFile(empty) returned nil error")
	}
}
