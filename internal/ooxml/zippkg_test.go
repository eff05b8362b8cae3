package ooxml

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestReadZip_RejectsOversizedMember(t *testing.T) {
	original := maxPartSize
	maxPartSize = 1024
	defer func() { maxPartSize = original }()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// A highly compressible run past the (shrunk) maxPartSize once
	// decompressed, simulating a zip-bomb member with a small compressed
	// footprint.
	if _, err := w.Write([]byte(strings.Repeat("a", 2048))); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := readZip(buf.Bytes()); err == nil {
		t.Error("want an error reading a member that exceeds maxPartSize decompressed")
	}
}

func TestReadZip_AcceptsNormalArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("<w:document/>")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	parts, err := readZip(buf.Bytes())
	if err != nil {
		t.Fatalf("readZip: %v", err)
	}
	if string(parts["word/document.xml"]) != "<w:document/>" {
		t.Errorf("got %q, want %q", parts["word/document.xml"], "<w:document/>")
	}
}
