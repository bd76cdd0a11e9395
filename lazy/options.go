package lazy

// Option configures an [Iter] at construction time.
type Option func(cfg *config)

type config struct {
	unbounded bool
	stop      func()
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithUnbounded marks the iterator as statically known to never end.
//
// The flag is a caller assertion: nothing inspects the producer to verify it.
// Finite-only operations refuse to run on iterators carrying it.
func WithUnbounded() Option {
	return func(cfg *config) {
		cfg.unbounded = true
	}
}

// WithStop registers fn to release resources held by the producer.
// It runs at most once, from [Iter.Stop] on the iterator or on whichever
// iterator the producer was moved into.
func WithStop(fn func()) Option {
	return func(cfg *config) {
		cfg.stop = joinStops(cfg.stop, fn)
	}
}

func joinStops(stops ...func()) func() {
	live := make([]func(), 0, len(stops))
	for _, s := range stops {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func() {
		for _, s := range live {
			s()
		}
	}
}
