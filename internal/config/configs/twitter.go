package configs

import "time"

// Twitter holds the OAuth1 application and user credentials used for
// status and profile lookups.
type Twitter struct {
	ConsumerKey    string        `env:"CONSUMER_KEY"`
	ConsumerSecret string        `env:"CONSUMER_SECRET"`
	AccessToken    string        `env:"ACCESS_TOKEN"`
	AccessSecret   string        `env:"ACCESS_SECRET"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
