package registry

// ProdEnvironment is the environment name that disables colors.
const ProdEnvironment = "prod"

// Options tune the logger built for an identity. They are consulted only
// when the identity is requested for the first time.
type Options struct {
	// Colorize set to false disables colors. Nil means unset (colors on).
	Colorize *bool
	// Environment set to "prod" disables colors.
	Environment string
}

// Bool returns a pointer to v, for use with Options.Colorize.
func Bool(v bool) *bool {
	return &v
}

// ColorizeEnabled resolves the colorize setting. Colors are off iff the
// environment is "prod" or Colorize is explicitly false. A nil receiver
// means no options.
func (o *Options) ColorizeEnabled() bool {
	if o == nil {
		return true
	}
	if o.Environment == ProdEnvironment {
		return false
	}
	if o.Colorize != nil && !*o.Colorize {
		return false
	}
	return true
}
