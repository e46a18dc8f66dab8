package history

// DefaultCapacity is the log capacity used when WithCapacity is not given.
const DefaultCapacity = 10

type config struct {
	capacity int
}

func defaultConfig() config {
	return config{capacity: DefaultCapacity}
}

// Option configures a History at construction.
type Option func(*config)

// WithCapacity sets the maximum number of retained entries.
// New rejects values below 1 with ErrInvalidCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}
