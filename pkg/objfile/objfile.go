// Package objfile parses Wavefront OBJ files into indexed triangle
// meshes suitable for subdivision.
package objfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/loopview/pkg/math"
	"github.com/Faultbox/loopview/pkg/subdiv"
)

// Load reads and parses an OBJ file from disk.
func Load(path string) (*subdiv.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// Parse parses OBJ data. Positions, texture coordinates and faces are
// supported; faces with more than 3 corners are fan-triangulated, and
// normals are ignored since the engine recomputes them. Each distinct
// (position, texcoord) pair becomes one output vertex so that positions
// and UVs stay index-aligned.
func Parse(data []byte) (*subdiv.Mesh, error) {
	var (
		positions []math.Vec3
		texcoords []math.Vec2
	)

	// outIndex maps distinct (position, texcoord) corners to output
	// vertex indices.
	outIndex := make(map[faceCorner]uint32)

	var (
		outPositions []math.Vec3
		outUVs       []math.Vec2
		outIndices   []uint32
	)

	vertexFor := func(c faceCorner) uint32 {
		if idx, ok := outIndex[c]; ok {
			return idx
		}
		idx := uint32(len(outPositions))
		outPositions = append(outPositions, positions[c.v])
		if c.vt >= 0 {
			outUVs = append(outUVs, texcoords[c.vt])
		} else {
			outUVs = append(outUVs, math.Vec2{})
		}
		outIndex[c] = idx
		return idx
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var p math.Vec3
			var err error
			if p.X, err = parseFloat(fields[1]); err == nil {
				if p.Y, err = parseFloat(fields[2]); err == nil {
					p.Z, err = parseFloat(fields[3])
				}
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, p)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 coordinates", lineNo)
			}
			var uv math.Vec2
			var err error
			if uv.X, err = parseFloat(fields[1]); err == nil {
				uv.Y, err = parseFloat(fields[2])
			}
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			texcoords = append(texcoords, uv)

		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			corners := make([]faceCorner, len(refs))
			for i, ref := range refs {
				c, err := parseCorner(ref, len(positions), len(texcoords))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners[i] = c
			}
			// Fan triangulation for quads and larger polygons.
			for i := 1; i+1 < len(corners); i++ {
				outIndices = append(outIndices,
					vertexFor(corners[0]),
					vertexFor(corners[i]),
					vertexFor(corners[i+1]),
				)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(outIndices) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return subdiv.NewMesh(outPositions, outUVs, outIndices)
}

// faceCorner is one OBJ-side face vertex reference.
type faceCorner struct {
	v, vt int
}

// parseCorner parses one face vertex reference of the form "v", "v/vt",
// "v/vt/vn" or "v//vn". OBJ indices are 1-based; negative values count
// back from the end of the respective list.
func parseCorner(ref string, numV, numVT int) (faceCorner, error) {
	var c faceCorner
	c.vt = -1

	parts := strings.Split(ref, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return c, fmt.Errorf("bad vertex reference %q", ref)
	}
	c.v, err = resolveIndex(v, numV)
	if err != nil {
		return c, err
	}

	if len(parts) > 1 && parts[1] != "" {
		vt, err := strconv.Atoi(parts[1])
		if err != nil {
			return c, fmt.Errorf("bad texcoord reference %q", ref)
		}
		c.vt, err = resolveIndex(vt, numVT)
		if err != nil {
			return c, err
		}
	}
	return c, nil
}

func resolveIndex(idx, count int) (int, error) {
	switch {
	case idx > 0 && idx <= count:
		return idx - 1, nil
	case idx < 0 && -idx <= count:
		return count + idx, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", idx, count)
	}
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return float32(f), nil
}
