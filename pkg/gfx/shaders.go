package gfx

// Default GLSL sources for the mesh viewer. Attribute slots follow the
// loader's convention: 0 = position, 1 = normal, 2 = texture coordinates.
const (
	MeshVsh = `
	#version 330
	uniform mat4 u_ModelViewProjection;
	layout(location = 0) in vec3 position_in;
	layout(location = 1) in vec3 normal_in;
	layout(location = 2) in vec2 tex_coords_in;
	out vec3 normal;
	out vec2 tex_coords;
	void main() {
		gl_Position = u_ModelViewProjection * vec4(position_in, 1.0);
		normal = normal_in;
		tex_coords = tex_coords_in;
	}`

	MeshFsh = `
	#version 330
	in vec3 normal;
	in vec2 tex_coords;
	out vec4 frag_color;
	void main() {
		float len = length(normal);
		vec3 shade = len > 0.0 ? normal / len * 0.5 + vec3(0.5) : vec3(0.7);
		frag_color = vec4(shade, 1.0);
	}`
)
