// Package obj decodes the subset of the Wavefront OBJ text format needed to
// view a model: v, vn, vt and f directives, with n-gon faces triangulated as
// a fan. All other directives are ignored. Decoding is strict: any malformed
// directive or out-of-range face index aborts the load with line context,
// and no partial mesh is ever returned.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gregjohnson2017/objview/pkg/log"
)

// ErrParse indicates a directive with a malformed or missing token
const ErrParse log.ConstErr = "malformed OBJ directive"

// ErrIndexRange indicates a face referencing an undefined vertex, texture
// coordinate, or normal
const ErrIndexRange log.ConstErr = "face index out of range"

// Corner is one face corner's indices into the mesh's attribute sequences,
// 0-based after OBJ index resolution. Texcoord and Normal are -1 when the
// face omits them.
type Corner struct {
	Position int
	Texcoord int
	Normal   int
}

// Mesh is the decoded geometry: parallel attribute sequences plus
// triangulated faces indexing into them.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Texcoords []mgl32.Vec2
	Faces     [][3]Corner
}

// TriangleCount returns the number of triangles after fan triangulation.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// HasNormals reports whether any vn directives were present.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

// HasTexcoords reports whether any vt directives were present.
func (m *Mesh) HasTexcoords() bool {
	return len(m.Texcoords) > 0
}

// DecodeFile opens and decodes the OBJ file at the given path.
func DecodeFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %v: %w", path, err)
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return m, nil
}

// Decode reads OBJ text from r into a Mesh. Errors carry the 1-based line
// number and the raw line text of the directive that failed.
func Decode(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			err = m.parsePosition(fields[1:])
		case "vn":
			err = m.parseNormal(fields[1:])
		case "vt":
			err = m.parseTexcoord(fields[1:])
		case "f":
			err = m.parseFace(fields[1:])
		default:
			// o, g, s, usemtl, mtllib and anything else
		}
		if err != nil {
			return nil, fmt.Errorf("line %v %q: %w", lineNum, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %v: %w", lineNum+1, err)
	}
	return m, nil
}

func (m *Mesh) parsePosition(args []string) error {
	v, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	m.Positions = append(m.Positions, mgl32.Vec3{v[0], v[1], v[2]})
	return nil
}

func (m *Mesh) parseNormal(args []string) error {
	v, err := parseFloats(args, 3)
	if err != nil {
		return err
	}
	m.Normals = append(m.Normals, mgl32.Vec3{v[0], v[1], v[2]})
	return nil
}

func (m *Mesh) parseTexcoord(args []string) error {
	// vt may carry an optional third w component, which is dropped
	if len(args) == 3 {
		args = args[:2]
	}
	v, err := parseFloats(args, 2)
	if err != nil {
		return err
	}
	m.Texcoords = append(m.Texcoords, mgl32.Vec2{v[0], v[1]})
	return nil
}

func parseFloats(args []string, want int) ([]float32, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: want %v coordinates, got %v", ErrParse, want, len(args))
	}
	out := make([]float32, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrParse, arg)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (m *Mesh) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: face needs at least 3 vertices, got %v", ErrParse, len(args))
	}
	corners := make([]Corner, len(args))
	for i, arg := range args {
		c, err := m.parseCorner(arg)
		if err != nil {
			return err
		}
		corners[i] = c
	}
	// fan triangulation around the first corner
	for i := 1; i+1 < len(corners); i++ {
		m.Faces = append(m.Faces, [3]Corner{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseCorner parses one p[/t][/n] index group, including the p//n form.
func (m *Mesh) parseCorner(ref string) (Corner, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return Corner{}, fmt.Errorf("%w: %q has too many index separators", ErrParse, ref)
	}
	c := Corner{Texcoord: -1, Normal: -1}
	var err error
	if c.Position, err = resolveIndex(parts[0], len(m.Positions)); err != nil {
		return Corner{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.Texcoord, err = resolveIndex(parts[1], len(m.Texcoords)); err != nil {
			return Corner{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.Normal, err = resolveIndex(parts[2], len(m.Normals)); err != nil {
			return Corner{}, err
		}
	}
	return c, nil
}

// resolveIndex converts a 1-based OBJ index to 0-based. Negative indices
// count backward from the end of the sequence accumulated so far, so -1 is
// the most recently defined element.
func resolveIndex(tok string, count int) (int, error) {
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an index", ErrParse, tok)
	}
	if idx == 0 {
		return 0, fmt.Errorf("%w: OBJ indices are 1-based", ErrParse)
	}
	if idx < 0 {
		idx += count
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %v resolves outside the %v defined so far", ErrIndexRange, tok, count)
	}
	return idx, nil
}
