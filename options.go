package id3kit

// Option configures behavior when opening files.
//
// Options use the functional options pattern:
//
//	file, err := id3kit.Open("song.mp3",
//	    id3kit.WithStrictParsing(),
//	    id3kit.WithArtworkPreload(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // fail on any warning
	preloadArtwork bool // load artwork immediately instead of lazily
	ignoreWarnings bool // suppress all warnings
	maxArtworkSize int  // maximum artwork size in bytes (0 = no limit)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, parsing continues past recoverable issues like encrypted
// frames or failed decompression, recording warnings alongside the
// parsed data. With strict parsing enabled, any warning becomes a
// fatal error.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithArtworkPreload loads artwork immediately instead of lazily.
//
// By default, picture payloads are only decoded when ExtractArtwork is
// called. Use this when you know you will need the artwork and want to
// fail fast if extraction has issues.
func WithArtworkPreload() Option {
	return func(o *openOptions) {
		o.preloadArtwork = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about non-fatal issues are collected in
// File.Warnings. This option discards them.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxArtworkSize sets a maximum size limit for artwork extraction.
//
// Pictures exceeding this size (in bytes) are skipped with a warning.
// Default is 0 (no limit).
//
//	// Limit artwork to 10MB
//	file, err := id3kit.Open("song.mp3",
//	    id3kit.WithMaxArtworkSize(10*1024*1024),
//	)
func WithMaxArtworkSize(bytes int) Option {
	return func(o *openOptions) {
		o.maxArtworkSize = bytes
	}
}
