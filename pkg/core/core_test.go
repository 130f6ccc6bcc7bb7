package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestScan_Smoke(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n// TODO: ship it\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tree, err := NewLocalTree(dir)
	if err != nil {
		t.Fatalf("NewLocalTree: %v", err)
	}
	findings, err := Scan(context.Background(), Config{Tree: tree, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if len(Patterns()) == 0 {
		t.Fatal("expected non-empty pattern list")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	tree, err := NewLocalTree(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalTree: %v", err)
	}
	res, err := ScanWithStats(context.Background(), Config{Tree: tree, Log: zerolog.Nop()})
	if err != nil {
		t.Fatalf("ScanWithStats: %v", err)
	}

	var buf bytes.Buffer
	if err := MarshalFindings(&buf, res.Findings); err != nil {
		t.Fatalf("MarshalFindings: %v", err)
	}
	back, err := UnmarshalFindings(&buf)
	if err != nil {
		t.Fatalf("UnmarshalFindings: %v", err)
	}
	if len(back) != len(res.Findings) {
		t.Fatalf("round trip changed length: %d != %d", len(back), len(res.Findings))
	}
}
