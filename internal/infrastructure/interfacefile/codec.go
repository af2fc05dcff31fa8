// Package interfacefile reads and writes interface documents as YAML.
package interfacefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

const filePerm = 0o644

// Codec implements port.InterfaceCodec on top of YAML files.
type Codec struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

var _ port.InterfaceCodec = (*Codec)(nil)

// NewCodec creates a codec with two-space indentation.
func NewCodec() *Codec {
	return &Codec{Indent: 2}
}

// Decode reads an interface document.
func (c *Codec) Decode(r io.Reader) (*entity.Interface, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var iface entity.Interface
	if err := dec.Decode(&iface); err != nil {
		if errors.Is(err, io.EOF) {
			return &iface, nil
		}
		return nil, fmt.Errorf("decode interface: %w", err)
	}
	for i, top := range iface.Toplevels {
		if top == nil || top.Class == "" {
			return nil, fmt.Errorf("decode interface: toplevel %d has no class", i)
		}
	}
	return &iface, nil
}

// Encode writes an interface document.
func (c *Codec) Encode(w io.Writer, iface *entity.Interface) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(c.Indent)
	if err := enc.Encode(iface); err != nil {
		return fmt.Errorf("encode interface: %w", err)
	}
	return enc.Close()
}

// ReadFile implements port.InterfaceCodec.
func (c *Codec) ReadFile(ctx context.Context, path string) (*entity.Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read interface: %w", err)
	}
	return c.Decode(bytes.NewReader(data))
}

// WriteFile implements port.InterfaceCodec. The file is written to a
// temporary sibling first and renamed into place.
func (c *Codec) WriteFile(ctx context.Context, path string, iface *entity.Interface) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, iface); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".shade-*.tmp")
	if err != nil {
		return fmt.Errorf("write interface: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write interface: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write interface: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write interface: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write interface: %w", err)
	}
	return nil
}
