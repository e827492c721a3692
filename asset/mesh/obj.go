// Package mesh implements the OBJ subset parser described in SPEC_FULL
// section 6: "v" position lines, "vn" normal lines (parsed but unused) and
// "f" face lines with polygon-fan triangulation.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guymor4/raytracer/log"
	"github.com/guymor4/raytracer/types"
)

// Face is a triangulated face, referencing three positions in RawMesh.Vertices.
type Face struct {
	A, B, C uint32
}

// RawMesh holds the parsed vertex list and the fan-triangulated face list.
type RawMesh struct {
	Vertices []types.Vec3
	Normals  []types.Vec3
	Faces    []Face
}

var logger = log.New("mesh")

// ParseOBJ parses the OBJ subset from r. Faces with invalid vertex indices
// are skipped with a warning rather than failing the parse (SPEC_FULL
// section 4.1 failure mode "invalid face indices").
func ParseOBJ(r io.Reader) (*RawMesh, error) {
	m := &RawMesh{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "v":
			v, err := parseVec3(tokens)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNum, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			v, err := parseVec3(tokens)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNum, err)
			}
			m.Normals = append(m.Normals, v)
		case "f":
			faces, err := parseFace(tokens, len(m.Vertices))
			if err != nil {
				logger.Warningf("line %d: skipping face: %s", lineNum, err.Error())
				continue
			}
			m.Faces = append(m.Faces, faces...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}

	return m, nil
}

func parseVec3(tokens []string) (types.Vec3, error) {
	if len(tokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`expected 3 arguments for %q; got %d`, tokens[0], len(tokens)-1)
	}
	var v types.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf("could not parse coordinate %q: %w", tokens[i+1], err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFace triangulates a polygon fan from the first vertex, per SPEC_FULL
// section 4.1. Each token is "v", "v/vt" or "v/vt/vn"; only the vertex
// index is used. vertexCount is the number of positions parsed so far, used
// to validate indices (1-based, negative indices offset from the end).
func parseFace(tokens []string, vertexCount int) ([]Face, error) {
	args := tokens[1:]
	if len(args) < 3 {
		return nil, fmt.Errorf("face has %d vertices; need at least 3", len(args))
	}

	indices := make([]uint32, len(args))
	for i, arg := range args {
		idxToken := strings.SplitN(arg, "/", 2)[0]
		idx, err := strconv.ParseInt(idxToken, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex index %q: %w", arg, err)
		}

		var resolved int
		if idx > 0 {
			resolved = int(idx) - 1
		} else if idx < 0 {
			resolved = vertexCount + int(idx)
		} else {
			return nil, fmt.Errorf("vertex index must not be zero")
		}

		if resolved < 0 || resolved >= vertexCount {
			return nil, fmt.Errorf("vertex index %d out of range [1,%d]", idx, vertexCount)
		}
		indices[i] = uint32(resolved)
	}

	faces := make([]Face, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		faces = append(faces, Face{A: indices[0], B: indices[i], C: indices[i+1]})
	}
	return faces, nil
}
