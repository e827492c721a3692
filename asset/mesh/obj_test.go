package mesh

import (
	"strings"
	"testing"
)

func TestParseOBJTriangulatesFan(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(m.Vertices))
	}
	if len(m.Faces) != 2 {
		t.Fatalf("expected quad to triangulate into 2 faces, got %d", len(m.Faces))
	}
	if m.Faces[0] != (Face{A: 0, B: 1, C: 2}) || m.Faces[1] != (Face{A: 0, B: 2, C: 3}) {
		t.Fatalf("unexpected fan triangulation: %+v", m.Faces)
	}
}

func TestParseOBJSkipsInvalidFace(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
f 1 2 99
f 1 2 3
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Faces) != 1 {
		t.Fatalf("expected the invalid face to be skipped, kept %d faces", len(m.Faces))
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
f -3 -2 -1
`
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Faces) != 1 || m.Faces[0] != (Face{A: 0, B: 1, C: 2}) {
		t.Fatalf("unexpected face from negative indices: %+v", m.Faces)
	}
}

func TestParseOBJEmptyIsValid(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Faces) != 0 {
		t.Fatalf("expected no faces for empty input")
	}
}
