package gpu

import (
	"fmt"

	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/guymor4/raytracer/log"
)

var logger = log.New("gpu")

// bindingBVHNodes and bindingCounters are both slot 4 in defaultBindingTable
// below. This reproduces a bind-group collision observed in the source
// pipeline verbatim: the BVH-node binding is silently overwritten by the
// performance-counter binding, so a device reading the counters buffer at
// slot 4 is actually reading whatever the last bound resource there was.
const (
	bindingUniforms  = 0
	bindingSpheres   = 1
	bindingTriangles = 2
	bindingFlatNodes = 3
	bindingTriIndex  = 4
	bindingBVHNodes  = 4
	bindingCounters  = 4
	bindingOutput    = 5
)

// defaultBindingTable returns the resource-name to binding-slot map used
// when constructing bind groups. bindingBVHNodes and bindingCounters both
// resolve to 4 here, matching the pre-existing collision above.
func defaultBindingTable() map[string]uint32 {
	return map[string]uint32{
		"uniforms":       bindingUniforms,
		"spheres":        bindingSpheres,
		"triangles":      bindingTriangles,
		"flatNodes":      bindingFlatNodes,
		"triangleIndex":  bindingTriIndex,
		"bvhNodes":       bindingBVHNodes,
		"counters":       bindingCounters,
		"outputTexture":  bindingOutput,
	}
}

// Buffer is a linear block of device memory addressed by byte offset.
type Buffer interface {
	Size() int
	Write(offset int, data []byte) error
	Read(offset int, out []byte) error
}

// Texture is a 2-D image the device can read and write, one float32 per
// channel per SPEC_FULL section 4.3 (three R32F accumulation planes plus
// one RGBA16F intermediate plane).
type Texture interface {
	Width() int
	Height() int
	Channels() int
	ReadPixel(x, y int) []float32
	WritePixel(x, y int, value []float32)
}

// Pipeline represents a bound compute or draw pipeline. It carries no
// behavior of its own in this abstraction — dispatch happens through
// kernel.Dispatch against plain Go slices, and Pipeline exists only so
// Device.CreatePipeline has a return type a renderer can hold onto and
// pass to Surface.Present-adjacent draw calls.
type Pipeline interface {
	Name() string
}

// Surface is a presentable render target, analogous to a swap chain.
type Surface interface {
	Width() int
	Height() int
	Present(frame Texture) error
}

// Device is the windowing/GPU-context collaborator named in section 1: it
// creates buffers, textures, pipelines and a presentable surface.
type Device interface {
	CreateBuffer(size int) Buffer
	CreateTexture(width, height, channels int) Texture
	CreatePipeline(name string) Pipeline
	Surface() Surface
	BindingTable() map[string]uint32
	Close() error
}

type simplePipeline struct{ name string }

func (p *simplePipeline) Name() string { return p.name }

// hostBuffer is a Buffer backed by a plain Go byte slice.
type hostBuffer struct {
	data []byte
}

func newHostBuffer(size int) *hostBuffer {
	return &hostBuffer{data: make([]byte, size)}
}

func (b *hostBuffer) Size() int { return len(b.data) }

func (b *hostBuffer) Write(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > len(b.data) {
		return fmt.Errorf("gpu: buffer write out of range: offset=%d len=%d size=%d", offset, len(data), len(b.data))
	}
	copy(b.data[offset:], data)
	return nil
}

func (b *hostBuffer) Read(offset int, out []byte) error {
	if offset < 0 || offset+len(out) > len(b.data) {
		return fmt.Errorf("gpu: buffer read out of range: offset=%d len=%d size=%d", offset, len(out), len(b.data))
	}
	copy(out, b.data[offset:])
	return nil
}

// hostTexture is a Texture backed by a plain Go float32 slice, used by
// headlessDevice for both the RGBA16F intermediate plane and the three
// R32F accumulation planes.
type hostTexture struct {
	width, height, channels int
	pixels                  []float32
}

func newHostTexture(width, height, channels int) *hostTexture {
	return &hostTexture{
		width: width, height: height, channels: channels,
		pixels: make([]float32, width*height*channels),
	}
}

func (t *hostTexture) Width() int    { return t.width }
func (t *hostTexture) Height() int   { return t.height }
func (t *hostTexture) Channels() int { return t.channels }

func (t *hostTexture) ReadPixel(x, y int) []float32 {
	off := (y*t.width + x) * t.channels
	out := make([]float32, t.channels)
	copy(out, t.pixels[off:off+t.channels])
	return out
}

func (t *hostTexture) WritePixel(x, y int, value []float32) {
	off := (y*t.width + x) * t.channels
	copy(t.pixels[off:off+t.channels], value)
}

// headlessSurface stores the last presented frame's pixels without any
// window; used by `cmd render --out` and by the tests that need a Device.
type headlessSurface struct {
	width, height int
	last          Texture
}

func (s *headlessSurface) Width() int  { return s.width }
func (s *headlessSurface) Height() int { return s.height }

func (s *headlessSurface) Present(frame Texture) error {
	s.last = frame
	return nil
}

// headlessDevice is a no-window Device implementation: the "device" in this
// mode is the CPU host itself, matching section 5's model where a single
// worker pool (kernel.Dispatch) plays the massively-parallel device role.
type headlessDevice struct {
	surface *headlessSurface
}

// NewHeadlessDevice returns a Device with no window that stores every
// resource as a plain Go slice, per SPEC_FULL section 4.3.
func NewHeadlessDevice(width, height int) Device {
	return &headlessDevice{surface: &headlessSurface{width: width, height: height}}
}

func (d *headlessDevice) CreateBuffer(size int) Buffer { return newHostBuffer(size) }

func (d *headlessDevice) CreateTexture(width, height, channels int) Texture {
	return newHostTexture(width, height, channels)
}

func (d *headlessDevice) CreatePipeline(name string) Pipeline { return &simplePipeline{name: name} }

func (d *headlessDevice) Surface() Surface { return d.surface }

func (d *headlessDevice) BindingTable() map[string]uint32 { return defaultBindingTable() }

func (d *headlessDevice) Close() error { return nil }

// glWindowSurface presents frames by blitting an RGBA8 texture into the
// default framebuffer, mirroring the teacher's FBO-blit interactive loop.
type glWindowSurface struct {
	window        *glfw.Window
	width, height int
	fbo, tex      uint32
}

func (s *glWindowSurface) Width() int  { return s.width }
func (s *glWindowSurface) Height() int { return s.height }

func (s *glWindowSurface) Present(frame Texture) error {
	if frame.Width() != s.width || frame.Height() != s.height {
		return fmt.Errorf("gpu: frame size %dx%d does not match surface size %dx%d",
			frame.Width(), frame.Height(), s.width, s.height)
	}

	pixels := make([]byte, s.width*s.height*4)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := frame.ReadPixel(x, y)
			off := (y*s.width + x) * 4
			for c := 0; c < 3 && c < len(v); c++ {
				pixels[off+c] = byte(clamp01to255(v[c]))
			}
			pixels[off+3] = 255
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, s.fbo)
	gl.BlitFramebuffer(0, 0, int32(s.width), int32(s.height), 0, 0, int32(s.width), int32(s.height), gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	s.window.SwapBuffers()
	glfw.PollEvents()
	return nil
}

func clamp01to255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return v * 255
}

// glDevice is the windowed Device implementation used by the interactive
// renderer, built on go-gl/gl and go-gl/glfw the same way the teacher's
// interactiveGLRenderer.initGL does (texture + FBO + blit loop), adapted
// from fixed pipeline blit-only presentation to this abstraction's
// buffer/texture/pipeline split.
type glDevice struct {
	window  *glfw.Window
	surface *glWindowSurface
}

// NewGLDevice creates a titled window of the given size and returns a
// Device that presents frames into it. Callers must run on the main OS
// thread (glfw.Init requirement).
func NewGLDevice(width, height int, title string) (Device, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gpu: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gpu: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gpu: init opengl: %w", err)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	logger.Noticef("opened %dx%d window %q", width, height, title)

	return &glDevice{
		window:  window,
		surface: &glWindowSurface{window: window, width: width, height: height, fbo: fbo, tex: tex},
	}, nil
}

func (d *glDevice) CreateBuffer(size int) Buffer { return newHostBuffer(size) }

func (d *glDevice) CreateTexture(width, height, channels int) Texture {
	return newHostTexture(width, height, channels)
}

func (d *glDevice) CreatePipeline(name string) Pipeline { return &simplePipeline{name: name} }

func (d *glDevice) Surface() Surface { return d.surface }

func (d *glDevice) BindingTable() map[string]uint32 { return defaultBindingTable() }

func (d *glDevice) Window() *glfw.Window { return d.window }

func (d *glDevice) Close() error {
	d.window.SetShouldClose(true)
	return nil
}
