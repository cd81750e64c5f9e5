// Package meshio persists a mesh.StripSet, and the fuller
// vertex/UV/normal payload a renderable mesh carries, to a small
// binary format. It is a consumer of package mesh, never the
// reverse — the stripifier itself imposes no particular byte order.
package meshio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/tristrip/mesh"
)

// WriteStrips encodes strips as: a little-endian uint16 strip count,
// then per strip a little-endian uint16 length followed by length
// little-endian uint16 vertex indices.
func WriteStrips(w io.Writer, strips mesh.StripSet) error {
	if len(strips) > 0xFFFF {
		return fmt.Errorf("meshio: %d strips exceeds uint16 count field", len(strips))
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(strips))); err != nil {
		return err
	}
	for _, strip := range strips {
		if len(strip) > 0xFFFF {
			return fmt.Errorf("meshio: strip of length %d exceeds uint16 length field", len(strip))
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(strip))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, strip); err != nil {
			return err
		}
	}
	return nil
}

// ReadStrips decodes the format WriteStrips produces.
func ReadStrips(r io.Reader) (mesh.StripSet, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	strips := make(mesh.StripSet, count)
	for i := range strips {
		var length uint16
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, err
		}
		strip := make([]uint16, length)
		if err := binary.Read(r, binary.LittleEndian, strip); err != nil {
			return nil, err
		}
		strips[i] = strip
	}
	return strips, nil
}
