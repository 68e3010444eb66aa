package regpipe

import "github.com/gogpu/regpipe/shader"

// Option configures a PipelineCache during creation.
//
// Example:
//
//	cache, err := regpipe.New(src, translator, emitter, compiler,
//	    regpipe.WithDenyList(regpipe.NewDenyList(0x3abf50ba16091f46)),
//	    regpipe.WithShaderDump("/tmp/shader-dumps"),
//	)
type Option func(*options)

// options holds optional configuration for PipelineCache creation.
type options struct {
	denyList         DenyList
	dumpDir          string
	profile          shader.Profile
	depthClipControl bool
	videoOut         VideoOutQuery
	videoOutFormats  bool
	builder          PipelineBuilder
}

// defaultOptions returns the default cache options.
func defaultOptions() options {
	return options{
		profile:          shader.DefaultProfile(),
		depthClipControl: true,
	}
}

// WithDenyList sets the content hashes whose programs must never reach
// the backend. A draw or dispatch using one of them is skipped.
func WithDenyList(d DenyList) Option {
	return func(o *options) {
		o.denyList = d
	}
}

// WithShaderDump enables dumping of raw bytecode (.bin) and emitted
// backend code (.spv) into dir. The directory is created on first use.
// An empty dir disables dumping.
func WithShaderDump(dir string) Option {
	return func(o *options) {
		o.dumpDir = dir
	}
}

// WithProfile sets the backend profile handed to the translator and
// emitter.
func WithProfile(p shader.Profile) Option {
	return func(o *options) {
		o.profile = p
	}
}

// WithDepthClipControl declares whether the backend natively supports the
// -w..w clip-space depth range. Without it vertex programs emulate the
// conversion.
func WithDepthClipControl(supported bool) Option {
	return func(o *options) {
		o.depthClipControl = supported
	}
}

// WithVideoOutQuery injects the query used to detect color buffers that
// alias a video-output surface.
func WithVideoOutQuery(q VideoOutQuery) Option {
	return func(o *options) {
		o.videoOut = q
	}
}

// WithVideoOutFormats makes color format adjustment honor the video-out
// query. It is off by default: video-out surfaces keep the format their
// registers describe.
func WithVideoOutFormats(enabled bool) Option {
	return func(o *options) {
		o.videoOutFormats = enabled
	}
}

// WithPipelineBuilder sets the builder that creates backend pipeline
// objects. Without one, cached pipelines carry no backend handle.
func WithPipelineBuilder(b PipelineBuilder) Option {
	return func(o *options) {
		o.builder = b
	}
}
