package cmd

// Config holds the process configuration read from the environment.
type Config struct {
	HTTPPort string
}
