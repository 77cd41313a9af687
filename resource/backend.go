package resource

import "image"

// ShaderSource holds the program text of a shader. Geometry is optional.
type ShaderSource struct {
	Vertex   string
	Fragment string
	Geometry string
}

// Backend creates and deletes GPU objects on behalf of a Cache.
type Backend interface {
	// CompileShader compiles and links a program, returning its ID.
	CompileShader(src ShaderSource) (uint32, error)
	DeleteShader(id uint32)
	// CreateTexture uploads img, with or without alpha channel, returning
	// the texture ID.
	CreateTexture(img image.Image, alpha bool) (uint32, error)
	DeleteTexture(id uint32)
}

// Shader is a compiled shader program.
type Shader struct {
	Name string
	ID   uint32
}

// Texture is a 2D texture.
type Texture struct {
	Name   string
	ID     uint32
	Width  int
	Height int
	Alpha  bool
}
