package confirm

// Messages are the only two texts a caller ever sees from a failed
// confirmation. Internal failure distinctions live in the logs.
type Messages struct {
	DefaultError     string `env:"CONFIRM_DEFAULT_ERROR" envDefault:"Invalid credentials"`
	AlreadyConfirmed string `env:"CONFIRM_ALREADY_CONFIRMED" envDefault:"Your account has already been confirmed"`
}

// Config is the process-wide confirmation configuration. Load it once at
// startup (pkg/config) and pass it to the workflow constructors; the
// workflow never reads hidden globals.
type Config struct {
	// TokenSalt is the key-derivation salt for confirmation tokens.
	TokenSalt string `env:"CONFIRM_TOKEN_SALT" envDefault:"signed token salt"`

	// DropUserKeys are removed from the user record before it is
	// returned to the caller.
	DropUserKeys []string `env:"CONFIRM_DROP_USER_KEYS" envDefault:"password,password_hash"`

	Messages Messages
}

// withDefaults fills empty message texts so a zero Config still reports
// something sensible.
func (c Config) withDefaults() Config {
	if c.Messages.DefaultError == "" {
		c.Messages.DefaultError = "Invalid credentials"
	}
	if c.Messages.AlreadyConfirmed == "" {
		c.Messages.AlreadyConfirmed = "Your account has already been confirmed"
	}
	return c
}
