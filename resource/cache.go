package resource

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for texture files
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/guiguan/caster"
	"github.com/npillmayer/arcade/omap"
	"github.com/npillmayer/arcade/textfile"
)

// Cache owns named shaders and textures.
type Cache struct {
	conf     Config
	backend  Backend
	shaders  *omap.Map[Shader]
	textures *omap.Map[Texture]
	cast     *caster.Caster
	closed   bool
}

// New creates an empty cache which creates its resources through backend.
func New(backend Backend, conf Config) (*Cache, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: backend is required", ErrInvalidConfig)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &Cache{
		conf:     conf.normalized(),
		backend:  backend,
		shaders:  omap.New[Shader](),
		textures: omap.New[Texture](),
		cast:     caster.New(nil),
	}, nil
}

// --- Shaders ---------------------------------------------------------------

// LoadShader compiles src and stores the program under name. A shader
// previously stored under the same name is deleted.
func (c *Cache) LoadShader(name string, src ShaderSource) (Shader, error) {
	key, err := c.keyFor(name)
	if err != nil {
		return Shader{}, err
	}
	id, err := c.backend.CompileShader(src)
	if err != nil {
		tracer().Errorf("resource: shader %q: %v", name, err)
		return Shader{}, fmt.Errorf("%w: compiling shader %q: %v", ErrBackend, name, err)
	}
	if old, ok := c.shaders.Get(key); ok {
		c.deleteShader(old)
	}
	shader := Shader{Name: name, ID: id}
	if err := c.shaders.Put(key, shader); err != nil {
		c.backend.DeleteShader(id)
		return Shader{}, err
	}
	c.publish(Event{Kind: ShaderLoaded, Name: name, ID: id})
	return shader, nil
}

// LoadShaderFiles reads the shader sources from files and compiles them
// with LoadShader. The geometry file is optional and may be empty.
func (c *Cache) LoadShaderFiles(name, vertexFile, fragmentFile, geometryFile string) (Shader, error) {
	var src ShaderSource
	var err error
	if src.Vertex, err = textfile.ReadAll(c.path(vertexFile)); err != nil {
		return Shader{}, err
	}
	if src.Fragment, err = textfile.ReadAll(c.path(fragmentFile)); err != nil {
		return Shader{}, err
	}
	if geometryFile != "" {
		if src.Geometry, err = textfile.ReadAll(c.path(geometryFile)); err != nil {
			return Shader{}, err
		}
	}
	return c.LoadShader(name, src)
}

// Shader returns the shader stored under name. A miss is not an error for
// the cache, but is traced as one.
func (c *Cache) Shader(name string) (Shader, bool) {
	s, ok := c.shaders.Get(omap.StringKey(name))
	if !ok {
		tracer().Errorf("resource: shader not found: %q", name)
	}
	return s, ok
}

// Shaders returns the number of shaders in the cache.
func (c *Cache) Shaders() int {
	return c.shaders.Len()
}

// --- Textures --------------------------------------------------------------

// LoadTexture decodes the image in file and stores it as texture name.
// PNG and JPEG files are supported.
func (c *Cache) LoadTexture(name, file string, alpha bool) (Texture, error) {
	f, err := os.Open(c.path(file))
	if err != nil {
		tracer().Errorf("resource: texture %q: %v", name, err)
		return Texture{}, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("resource: decoding %s: %w", file, err)
	}
	return c.LoadTextureImage(name, img, alpha)
}

// LoadTextureImage uploads img and stores it as texture name. A texture
// previously stored under the same name is deleted.
func (c *Cache) LoadTextureImage(name string, img image.Image, alpha bool) (Texture, error) {
	key, err := c.keyFor(name)
	if err != nil {
		return Texture{}, err
	}
	id, err := c.backend.CreateTexture(img, alpha)
	if err != nil {
		tracer().Errorf("resource: texture %q: %v", name, err)
		return Texture{}, fmt.Errorf("%w: creating texture %q: %v", ErrBackend, name, err)
	}
	if old, ok := c.textures.Get(key); ok {
		c.deleteTexture(old)
	}
	bounds := img.Bounds()
	tex := Texture{
		Name:   name,
		ID:     id,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Alpha:  alpha,
	}
	if err := c.textures.Put(key, tex); err != nil {
		c.backend.DeleteTexture(id)
		return Texture{}, err
	}
	c.publish(Event{Kind: TextureLoaded, Name: name, ID: id})
	return tex, nil
}

// Texture returns the texture stored under name. A miss is traced as an
// error.
func (c *Cache) Texture(name string) (Texture, bool) {
	t, ok := c.textures.Get(omap.StringKey(name))
	if !ok {
		tracer().Errorf("resource: texture not found: %q", name)
	}
	return t, ok
}

// Textures returns the number of textures in the cache.
func (c *Cache) Textures() int {
	return c.textures.Len()
}

// --- Teardown --------------------------------------------------------------

// Release deletes every resource through the backend, shaders first, each
// kind in name order. The cache is empty afterwards and may be reused.
func (c *Cache) Release() {
	c.shaders.Walk(func(_ omap.Key, s Shader) bool {
		c.deleteShader(s)
		return true
	})
	c.shaders.Clear(nil)
	c.textures.Walk(func(_ omap.Key, t Texture) bool {
		c.deleteTexture(t)
		return true
	})
	c.textures.Clear(nil)
}

// Close releases all resources and ends all event subscriptions. Further
// loads fail with ErrClosed.
func (c *Cache) Close() {
	if c.closed {
		return
	}
	c.Release()
	c.closed = true
	c.cast.Close()
}

func (c *Cache) deleteShader(s Shader) {
	c.backend.DeleteShader(s.ID)
	c.publish(Event{Kind: ShaderReleased, Name: s.Name, ID: s.ID})
}

func (c *Cache) deleteTexture(t Texture) {
	c.backend.DeleteTexture(t.ID)
	c.publish(Event{Kind: TextureReleased, Name: t.Name, ID: t.ID})
}

func (c *Cache) keyFor(name string) (omap.Key, error) {
	if c.closed {
		return omap.Key{}, ErrClosed
	}
	key := omap.StringKey(name)
	return key, key.Validate()
}

func (c *Cache) path(file string) string {
	if c.conf.Dir == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.conf.Dir, file)
}
