package configs

// Auth configures bearer token verification. Secret is the HMAC key the
// identity provider signs tokens with.
type Auth struct {
	Secret string `env:"SECRET"`
}
