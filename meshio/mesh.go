package meshio

import (
	"encoding/binary"
	"io"

	"github.com/katalvlaran/tristrip/mesh"
)

// Vertex is one 3D position.
type Vertex struct {
	X, Y, Z float32
}

// Mesh bundles the full renderable payload alongside a StripSet:
// positions, per-strip UV coordinates, and per-strip normals, so a
// complete file round-trip is possible rather than just connectivity.
type Mesh struct {
	Vertices []Vertex
	Strips   mesh.StripSet
	// UVs holds one flattened (u0,v0,u1,v1,...) float32 slice per
	// strip, parallel to Strips.
	UVs [][]float32
	// Normals holds one flattened (x0,y0,z0,x1,y1,z1,...) float32
	// slice per strip, parallel to Strips.
	Normals [][]float32
}

// uvQuantum is the fixed-point scale applied before truncating each UV
// component to a uint16. UV coordinates normally live in [0,1] (or a
// small multiple for tiling), so this keeps four decimal digits of
// precision in half the space a float32 would cost.
const uvQuantum = 10000

// WriteMesh encodes m as: vertices, then strips (via WriteStrips),
// then UV strips, then normal strips.
func WriteMesh(w io.Writer, m Mesh) error {
	if err := writeVertices(w, m.Vertices); err != nil {
		return err
	}
	if err := WriteStrips(w, m.Strips); err != nil {
		return err
	}
	if err := writeQuantizedStrips(w, m.UVs, uvQuantum); err != nil {
		return err
	}
	if err := writeRawFloatStrips(w, m.Normals); err != nil {
		return err
	}
	return nil
}

// ReadMesh decodes the format WriteMesh produces.
func ReadMesh(r io.Reader) (Mesh, error) {
	var m Mesh
	var err error
	if m.Vertices, err = readVertices(r); err != nil {
		return Mesh{}, err
	}
	if m.Strips, err = ReadStrips(r); err != nil {
		return Mesh{}, err
	}
	if m.UVs, err = readQuantizedStrips(r, uvQuantum); err != nil {
		return Mesh{}, err
	}
	if m.Normals, err = readRawFloatStrips(r); err != nil {
		return Mesh{}, err
	}
	return m, nil
}

func writeVertices(w io.Writer, vertices []Vertex) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(vertices))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, vertices)
}

func readVertices(r io.Reader) ([]Vertex, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	vertices := make([]Vertex, count)
	if err := binary.Read(r, binary.LittleEndian, vertices); err != nil {
		return nil, err
	}
	return vertices, nil
}

// writeQuantizedStrips encodes one flattened float32 slice per strip,
// each component truncated to a fixed-point uint16 by multiplying by
// quantum. Lossy, but compact — suited to UV coordinates where the
// truncation error is imperceptible at render time.
func writeQuantizedStrips(w io.Writer, strips [][]float32, quantum float32) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(strips))); err != nil {
		return err
	}
	for _, strip := range strips {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(strip))); err != nil {
			return err
		}
		quantized := make([]uint16, len(strip))
		for i, v := range strip {
			quantized[i] = uint16(v * quantum)
		}
		if err := binary.Write(w, binary.LittleEndian, quantized); err != nil {
			return err
		}
	}
	return nil
}

func readQuantizedStrips(r io.Reader, quantum float32) ([][]float32, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	strips := make([][]float32, count)
	for i := range strips {
		var length uint16
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, err
		}
		quantized := make([]uint16, length)
		if err := binary.Read(r, binary.LittleEndian, quantized); err != nil {
			return nil, err
		}
		strip := make([]float32, length)
		for j, v := range quantized {
			strip[j] = float32(v) / quantum
		}
		strips[i] = strip
	}
	return strips, nil
}

// writeRawFloatStrips encodes one flattened float32 slice per strip as
// full-precision 4-byte floats. Unlike UVs, normals are not quantized:
// lighting is sensitive enough to quantization error along a unit
// vector that full precision is worth the extra space.
func writeRawFloatStrips(w io.Writer, strips [][]float32) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(strips))); err != nil {
		return err
	}
	for _, strip := range strips {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(strip))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, strip); err != nil {
			return err
		}
	}
	return nil
}

func readRawFloatStrips(r io.Reader) ([][]float32, error) {
	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	strips := make([][]float32, count)
	for i := range strips {
		var length uint16
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, err
		}
		strip := make([]float32, length)
		if err := binary.Read(r, binary.LittleEndian, strip); err != nil {
			return nil, err
		}
		strips[i] = strip
	}
	return strips, nil
}
