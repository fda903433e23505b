// Package loadobj implements a minimal Wavefront OBJ reader: vertices and
// triangle faces only, sufficient to feed prim.NewMesh. Normals and texture
// coordinates in the file are skipped without being parsed.
//   https://en.wikipedia.org/wiki/Wavefront_.obj_file#File_format
package loadobj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gazed/tracer/geom"
)

// Shape is one OBJ object (an "o"-delimited group, or the whole file when
// it has no such grouping) reduced to vertices and triangle faces.
type Shape struct {
	Name  string
	Verts []geom.Vec3
	Faces [][3]int
}

// Load reads the first object in an OBJ document from r — the first group
// of lines as split by splitObjects, or the whole file if it has no "o" or
// "g" lines —
// and returns its vertices and 0-based triangle faces. A face with other
// than three vertex references, or any unparseable vertex/face line, is a
// hard load failure for this object; see LoadShapes for a multi-object file
// where a malformed object can be skipped instead.
func Load(r io.Reader) (verts []geom.Vec3, faces [][3]int, err error) {
	groups, err := splitObjects(r)
	if err != nil {
		return nil, nil, err
	}
	if len(groups) == 0 {
		return nil, nil, fmt.Errorf("loadobj: empty OBJ document")
	}
	shape, err := parseObject(groups[0].name, groups[0].lines)
	if err != nil {
		return nil, nil, err
	}
	return shape.Verts, shape.Faces, nil
}

// LoadShapes reads every object in an OBJ document. An object containing a
// non-triangular face is skipped (per the loader's shape-skip contract);
// other objects in the same file still load. It is not an error for every
// object to be skipped — the result is simply empty.
func LoadShapes(r io.Reader) ([]Shape, error) {
	groups, err := splitObjects(r)
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, 0, len(groups))
	for _, g := range groups {
		shape, err := parseObject(g.name, g.lines)
		if err != nil {
			continue // malformed shape skipped; siblings still load.
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// objGroup is the raw line group for one "o"-delimited object.
type objGroup struct {
	name  string
	lines []string
}

// splitObjects groups an OBJ file's lines by "o" (or "g") boundaries. Lines
// before the first such boundary form an unnamed group of their own, so a
// file with no such lines is treated as a single unnamed object.
func splitObjects(r io.Reader) ([]objGroup, error) {
	var groups []objGroup
	var current *objGroup

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tokens := strings.Fields(line)
		if tokens[0] == "o" || tokens[0] == "g" {
			name := ""
			if len(tokens) > 1 {
				name = tokens[1]
			}
			groups = append(groups, objGroup{name: name})
			current = &groups[len(groups)-1]
			continue
		}
		if current == nil {
			groups = append(groups, objGroup{})
			current = &groups[0]
		}
		current.lines = append(current.lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loadobj: %w", err)
	}
	return groups, nil
}

// parseObject turns one object's raw lines into a Shape. Any face with
// other than 3 vertex references fails the whole object.
func parseObject(name string, lines []string) (Shape, error) {
	var verts []geom.Vec3
	var faces [][3]int

	for _, line := range lines {
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "v":
			v, err := parseVertex(tokens)
			if err != nil {
				return Shape{}, fmt.Errorf("loadobj: %w", err)
			}
			verts = append(verts, v)
		case "f":
			if len(tokens)-1 != 3 {
				return Shape{}, fmt.Errorf("loadobj: non-triangular face in object %q: %d vertex refs", name, len(tokens)-1)
			}
			face, err := parseFace(tokens, len(verts))
			if err != nil {
				return Shape{}, fmt.Errorf("loadobj: %w", err)
			}
			faces = append(faces, face)
		}
	}
	if len(verts) == 0 {
		return Shape{}, fmt.Errorf("loadobj: object %q has no vertices", name)
	}
	return Shape{Name: name, Verts: verts, Faces: faces}, nil
}

func parseVertex(tokens []string) (geom.Vec3, error) {
	if len(tokens) < 4 {
		return geom.Vec3{}, fmt.Errorf("malformed vertex line: %v", tokens)
	}
	x, err := strconv.ParseFloat(tokens[1], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("bad vertex x: %w", err)
	}
	y, err := strconv.ParseFloat(tokens[2], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("bad vertex y: %w", err)
	}
	z, err := strconv.ParseFloat(tokens[3], 32)
	if err != nil {
		return geom.Vec3{}, fmt.Errorf("bad vertex z: %w", err)
	}
	return geom.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace parses exactly three "v", "v/vt", "v//vn", or "v/vt/vn" tokens
// into 0-based vertex indices. Negative (relative-to-end) indices per the
// OBJ spec are resolved against vertCount, the vertex count seen so far.
func parseFace(tokens []string, vertCount int) ([3]int, error) {
	var face [3]int
	for i := 0; i < 3; i++ {
		idxStr := strings.SplitN(tokens[i+1], "/", 2)[0]
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return face, fmt.Errorf("bad face index %q: %w", tokens[i+1], err)
		}
		if idx < 0 {
			idx = vertCount + idx + 1
		}
		face[i] = idx - 1
	}
	return face, nil
}
