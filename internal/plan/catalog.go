package plan

// Source tree and output layout, relative to the build root.
const (
	libSrcDir    = "src/sokol"
	sampleSrcDir = "src/examples"
	shaderSrcDir = "src/shaders"
	shellFile    = "src/web/shell.html"

	objDir = "out/obj"
	binDir = "out/bin"
	webDir = "out/web"

	libArtifact = "out/libsokol.a"
)

// libraryUnits is the fixed, platform-independent list of library
// translation units: windowing, graphics, timing, audio, the immediate-mode
// overlay, and the debug text/shape helpers.
var libraryUnits = []string{
	"sokol_log",
	"sokol_app",
	"sokol_gfx",
	"sokol_glue",
	"sokol_time",
	"sokol_audio",
	"sokol_gl",
	"sokol_debugtext",
	"sokol_shape",
}

// sampleCatalog is the fixed list of sample programs.
var sampleCatalog = []string{
	"clear",
	"triangle",
	"quad",
	"bufferoffsets",
	"cube",
	"noninterleaved",
	"texcube",
	"offscreen",
	"instancing",
	"mrt",
	"blend",
	"saudio",
	"sgl",
	"debugtext",
	"shapes",
}

// shaderCatalog is the fixed list of shader sources fed to the cross-compiler.
var shaderCatalog = []string{
	"triangle.glsl",
	"quad.glsl",
	"bufferoffsets.glsl",
	"cube.glsl",
	"noninterleaved.glsl",
	"texcube.glsl",
	"offscreen.glsl",
	"instancing.glsl",
	"mrt.glsl",
	"blend.glsl",
}

// Samples returns the sample catalog.
func Samples() []string {
	out := make([]string, len(sampleCatalog))
	copy(out, sampleCatalog)
	return out
}
