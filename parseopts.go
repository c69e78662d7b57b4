package infix

// Option is an option for Evaluate and Compile.
type Option interface {
	option(config) config
}

// config holds the options for one call. It is built fresh for each call, so
// options never leak between evaluations.
type config struct {
	// implicit enables inserting multiplication between adjacent operands
	// and parenthesized terms.
	implicit bool
}

type implicitopt bool

func (o implicitopt) option(c config) config {
	c.implicit = bool(o)
	return c
}

// ImplicitMultiplication makes a number or parenthesized term followed by a
// parenthesized term, or a parenthesized term followed by a number, a
// product. E.g., "2(3+4)" is 14 instead of an error. Two adjacent numbers
// remain an error.
func ImplicitMultiplication() Option {
	return implicitopt(true)
}

func newconfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
