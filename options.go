package cubeperm

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	catalog     *Catalog
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		catalog:     Standard(),
		moveHistory: true,
	}
}

// WithCatalog selects the generator catalog. The default is Standard().
func WithCatalog(c *Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are kept and can be undone.
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(cfg *config) {
		cfg.moveHistory = enabled
	}
}
