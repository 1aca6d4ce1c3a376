package latexify

import (
	"github.com/go-resty/resty/v2"
)

// ConvertOptions holds options for field normalization and sheet processing.
type ConvertOptions struct {
	Config     *TransformConfig
	HTTPClient *resty.Client
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithRenderLatex sets whether reserved characters outside protected
// spans are escaped for math-mode rendering.
func WithRenderLatex(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.RenderLatex = enable
	}
}

// WithTutoring sets the reserved tutoring flag. It has no effect on
// normalization output.
func WithTutoring(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Tutoring = enable
	}
}

// WithStepMC sets the reserved stepMC flag. It has no effect on
// normalization output.
func WithStepMC(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.StepMC = enable
	}
}

// WithVerbosity enables diagnostic tracing of detected spans and
// rewrites. Tracing never alters output.
func WithVerbosity(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Verbosity = enable
	}
}

// WithConfig sets a complete TransformConfig, replacing the defaults.
// The config is copied; later options never mutate the caller's struct.
func WithConfig(config *TransformConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			cfg := *config
			opts.Config = &cfg
		}
	}
}

// WithHTTPClient sets the resty client used for sheet fetching.
func WithHTTPClient(client *resty.Client) Option {
	return func(opts *ConvertOptions) {
		opts.HTTPClient = client
	}
}

// defaultConvertOptions returns the default options.
// The config is copied so options never mutate the shared singleton.
func defaultConvertOptions() *ConvertOptions {
	cfg := *DefaultConfig()
	return &ConvertOptions{
		Config: &cfg,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
