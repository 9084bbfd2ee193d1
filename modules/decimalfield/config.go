package decimalfield

// Config configures the module.
type Config struct {
	// BasePath is the path the module is mounted under, used to build the
	// datastar action URL of the page. Empty when mounted at the root.
	BasePath string

	// Title is the heading of the demo page.
	Title string

	// DefaultDigits applies when neither the request nor its preset sets a
	// digit limit. Nil means no limit.
	DefaultDigits *int

	// MaxInputLength caps the raw value in characters.
	MaxInputLength int
}

const defaultMaxInputLength = 256

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "Decimal input"
	}
	if c.MaxInputLength <= 0 {
		c.MaxInputLength = defaultMaxInputLength
	}
	return c
}
