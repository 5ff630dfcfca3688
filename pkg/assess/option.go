package assess

type Option func(*Engine)

// WithDepth sets the search depth in plies. Depths below 1 keep the default.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth >= 1 {
			e.depth = depth
		}
	}
}

func WithCache(c Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithProgress registers a callback invoked after each root move is searched.
func WithProgress(progress func(done, total int)) Option {
	return func(e *Engine) {
		e.progress = progress
	}
}

// Cache memoises root decisions. Take returns the stored decision for key or
// runs search and stores its result.
type Cache interface {
	Take(key string, search func() Decision) Decision
}
