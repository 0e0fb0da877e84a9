package text

// DefaultSize is the font size used when a run leaves Size at zero.
const DefaultSize = 12

// Option configures a Shaper.
type Option func(*options)

type options struct {
	cacheSize  int
	lineHeight float64
	dpi        float64
	language   string
}

func defaultOptions() options {
	return options{
		cacheSize: 256,
		dpi:       72,
		language:  "en",
	}
}

// WithCacheSize sets how many shaped runs are kept. Values <= 0 use the
// cache default.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithLineHeight fixes the layout height in pixels. Zero uses the font's
// ascent plus descent.
func WithLineHeight(h float64) Option {
	return func(o *options) {
		o.lineHeight = h
	}
}

// WithDPI sets the resolution used to convert point sizes to pixels.
// The default of 72 makes one point one pixel.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
func WithLanguage(tag string) Option {
	return func(o *options) {
		o.language = tag
	}
}
