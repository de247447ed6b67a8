package core

// Option configures a Func at construction time.
type Option func(*options)

// WithName sets the name a Func reports in errors and matcher failure messages.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// unexported constants.
const (
	defaultName = "mock"
)

type options struct {
	name string
}

func newOptions(opts []Option) options {
	o := options{name: defaultName}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
