package ooxml

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// archiveParts is a package's ZIP members keyed by their in-archive path
// ("word/document.xml", never a leading "/"). Parse only reads the fixed
// set of parts this package understands (see Parser.Parse); anything else
// in a source archive (media, themes, custom XML) is not preserved across
// a parse-then-generate round trip.
type archiveParts map[string][]byte

// maxPartSize caps how much any single decompressed zip member may grow to.
// Word's own parts (document.xml, styles.xml, media) stay well under this
// even for large documents; it exists to bound a crafted archive whose
// declared (compressed) size is small but whose decompressed content is not
// — a zip bomb — since archive/zip enforces no such limit on its own.
var maxPartSize int64 = 256 << 20 // 256 MiB; var so tests can shrink it

// readZip unpacks a .docx archive into its member blobs. There is no
// ecosystem zip reader among the examples' dependencies for this — zip
// handling is the stdlib's own domain, and archive/zip is what every part
// of the pack that touches ZIP packaging (directly or by implication, via
// the OPC layer's PhysPkgReader) ultimately sits on.
func readZip(data []byte) (archiveParts, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("ooxml: opening zip: %w", err)
	}
	parts := make(archiveParts, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("ooxml: opening zip member %q: %w", f.Name, err)
		}
		blob, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("ooxml: reading zip member %q: %w", f.Name, err)
		}
		if int64(len(blob)) > maxPartSize {
			return nil, fmt.Errorf("ooxml: zip member %q exceeds %d bytes decompressed", f.Name, maxPartSize)
		}
		parts[f.Name] = blob
	}
	return parts, nil
}

// writeZip packs part blobs into a new .docx archive, writing a fixed
// member order so output is byte-for-byte stable across runs given
// identical input.
func writeZip(parts archiveParts, order []string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	written := make(map[string]bool, len(order))
	for _, name := range order {
		blob, ok := parts[name]
		if !ok {
			continue
		}
		if err := writeZipMember(zw, name, blob); err != nil {
			return nil, err
		}
		written[name] = true
	}
	for _, name := range sortedKeys(parts) {
		if written[name] {
			continue
		}
		if err := writeZipMember(zw, name, parts[name]); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("ooxml: closing zip writer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeZipMember(zw *zip.Writer, name string, blob []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("ooxml: creating zip member %q: %w", name, err)
	}
	if _, err := w.Write(blob); err != nil {
		return fmt.Errorf("ooxml: writing zip member %q: %w", name, err)
	}
	return nil
}

// standardPartOrder lists the parts Word itself writes first; any other
// members (header/footer parts) follow in sorted name order.
var standardPartOrder = []string{
	"[Content_Types].xml",
	"_rels/.rels",
	"docProps/core.xml",
	"word/document.xml",
	"word/_rels/document.xml.rels",
	"word/styles.xml",
	"word/numbering.xml",
}
