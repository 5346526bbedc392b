package piecetable

// config is the feature selection of one table, fixed at construction.
type config struct {
	lineTracking bool
	breaks       breakPolicy
	coalesce     bool
}

var defaultConfig = config{
	lineTracking: true,
	breaks:       asciiBreaks,
	coalesce:     true,
}

// Option configures a table at construction time. Feature selection is fixed
// per table and not runtime-toggleable.
type Option func(*config)

// WithLineTracking enables or disables the line index. It is enabled by
// default; with tracking disabled, line queries return ErrNoLineIndex.
func WithLineTracking(enabled bool) Option {
	return func(cfg *config) {
		cfg.lineTracking = enabled
	}
}

// WithUnicodeBreaks selects the Unicode line terminator set as the line-break
// classifier: LF, CR LF (as a single break), VT, FF, lone CR, NEL, LS and PS.
// The default classifier recognizes ASCII LF only.
func WithUnicodeBreaks() Option {
	return func(cfg *config) {
		cfg.breaks = unicodeBreaks
	}
}

// WithInsertCoalescing enables or disables the contiguous-insert
// optimization: sequential inserts at the tail of the previous insertion
// extend that piece in place instead of allocating a new one. Enabled by
// default. The setting affects the internal piece count, never the document
// content.
func WithInsertCoalescing(enabled bool) Option {
	return func(cfg *config) {
		cfg.coalesce = enabled
	}
}
