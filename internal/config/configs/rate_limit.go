package configs

// RateLimit bounds how often a single viewer may submit tweets.
type RateLimit struct {
	RPS   float64 `env:"RPS" envDefault:"1"`
	Burst int     `env:"BURST" envDefault:"5"`
}
