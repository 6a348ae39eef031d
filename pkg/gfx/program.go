package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gregjohnson2017/objview/pkg/log"
)

type Program struct {
	id uint32
}

// ErrProgramLink indicates that a program failed to link
const ErrProgramLink log.ConstErr = "failed to link program"

// NewProgram attaches the given compiled shaders to a new shader program
// and links it.
func NewProgram(shaders ...Shader) (Program, error) {
	prog := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(prog, shader.id)
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)

		log := string(make([]byte, logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))

		return Program{}, fmt.Errorf("%w: %v", ErrProgramLink, log)
	}

	return Program{prog}, nil
}

// UploadUniform uploads float32 data in the given uniform variable
// belonging to the given program ID.
//
// If data does not contain between 1 and 4 arguments (inclusive),
// UploadUniform will panic.
func (p Program) UploadUniform(uniformName string, data ...float32) {
	uniformID := gl.GetUniformLocation(p.id, &[]byte(uniformName + "\x00")[0])
	if uniformID == -1 {
		log.Fatalf("\"%s\" is an invalid uniform name", uniformName)
	}
	gl.UseProgram(p.id)
	switch len(data) {
	case 1:
		gl.Uniform1f(uniformID, data[0])
	case 2:
		gl.Uniform2f(uniformID, data[0], data[1])
	case 3:
		gl.Uniform3f(uniformID, data[0], data[1], data[2])
	case 4:
		gl.Uniform4f(uniformID, data[0], data[1], data[2], data[3])
	default:
		log.Fatal("Invalid number of arguments to UploadUniform")
	}
	gl.UseProgram(0)
}

// UploadUniformMat4 uploads a 4x4 matrix, typically the combined
// model-view-projection, into the given uniform variable.
func (p Program) UploadUniformMat4(uniformName string, mat mgl32.Mat4) {
	uniformID := gl.GetUniformLocation(p.id, &[]byte(uniformName + "\x00")[0])
	if uniformID == -1 {
		log.Fatalf("\"%s\" is an invalid uniform name", uniformName)
	}
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(uniformID, 1, false, &mat[0])
	gl.UseProgram(0)
}

// ErrAttributeMismatch indicates that a mesh feeds a program input with the
// wrong number of components.
const ErrAttributeMismatch log.ConstErr = "attribute layout does not match program input"

// attribComponents maps a program's declared input type to the component
// count a matching buffer attribute must supply. Types the mesh layer never
// produces map to 0.
func attribComponents(xtype uint32) int32 {
	switch xtype {
	case gl.FLOAT:
		return 1
	case gl.FLOAT_VEC2:
		return 2
	case gl.FLOAT_VEC3:
		return 3
	case gl.FLOAT_VEC4:
		return 4
	}
	return 0
}

// ValidateAttributes reflects the program's active vertex inputs and checks
// each one the mesh actually feeds for a matching component count. Inputs
// the mesh leaves unbound are allowed, since the device supplies a constant
// default for them.
func (p Program) ValidateAttributes(m *Mesh) error {
	var count int32
	gl.GetProgramiv(p.id, gl.ACTIVE_ATTRIBUTES, &count)
	for i := int32(0); i < count; i++ {
		var name [256]byte
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(p.id, uint32(i), int32(len(name)-1), &length, &size, &xtype, &name[0])
		loc := gl.GetAttribLocation(p.id, &name[0])
		if loc < 0 {
			continue
		}
		attr, bound := m.AttributeBySlot(uint32(loc))
		if !bound {
			continue
		}
		want := attribComponents(xtype)
		if want == 0 || attr.Components != want || attr.Type != Float32 {
			return fmt.Errorf("%w: %q at slot %v wants %v float components, mesh supplies %v of type %#x",
				ErrAttributeMismatch, string(name[:length]), loc, want, attr.Components, uint32(attr.Type))
		}
	}
	return nil
}

// Bind makes OpenGL use this program
func (p Program) Bind() {
	gl.UseProgram(p.id)
}

// Unbind sets the current program ID to 0
func (p Program) Unbind() {
	gl.UseProgram(0)
}

// Delete tells OpenGL to delete the program ID
func (p Program) Delete() {
	gl.DeleteProgram(p.id)
}
