package lecturekit

// DefaultHeadAnchor is the stylesheet link the inline <style> block follows
// in the lecture pages.
const DefaultHeadAnchor = `<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css">`

// Config holds the declarative settings for the rebuild and split
// transforms. The zero value of any field means "use the default".
type Config struct {
	Rebuild RebuildConfig `yaml:"rebuild"`
	Split   SplitConfig   `yaml:"split"`
	Images  []ImageRule   `yaml:"images"`
}

// RebuildConfig configures the rebuild transform.
type RebuildConfig struct {
	// Anchor is the literal <link> tag the inline <style> block follows.
	Anchor string `yaml:"anchor"`

	// Stylesheet and Script are the external files the inline blocks
	// are replaced with.
	Stylesheet string `yaml:"stylesheet"`
	Script     string `yaml:"script"`

	// Output is the file name written beside the input page.
	Output string `yaml:"output"`
}

// SplitConfig configures the split transform.
type SplitConfig struct {
	Stylesheet string `yaml:"stylesheet"`
	Script     string `yaml:"script"`
}

// DefaultConfig returns the settings the lecture pages were built with.
func DefaultConfig() *Config {
	return &Config{
		Rebuild: RebuildConfig{
			Anchor:     DefaultHeadAnchor,
			Stylesheet: "css/style.css",
			Script:     "js/main.js",
			Output:     "index.html",
		},
		Split: SplitConfig{
			Stylesheet: "css/styles.css",
			Script:     "js/main.js",
		},
		Images: DefaultImageRules(),
	}
}

// ApplyDefaults fills every empty field from DefaultConfig.
// An explicitly empty image table stays empty only if Images is non-nil.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Rebuild.Anchor == "" {
		c.Rebuild.Anchor = def.Rebuild.Anchor
	}
	if c.Rebuild.Stylesheet == "" {
		c.Rebuild.Stylesheet = def.Rebuild.Stylesheet
	}
	if c.Rebuild.Script == "" {
		c.Rebuild.Script = def.Rebuild.Script
	}
	if c.Rebuild.Output == "" {
		c.Rebuild.Output = def.Rebuild.Output
	}
	if c.Split.Stylesheet == "" {
		c.Split.Stylesheet = def.Split.Stylesheet
	}
	if c.Split.Script == "" {
		c.Split.Script = def.Split.Script
	}
	if c.Images == nil {
		c.Images = def.Images
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	for i := range c.Images {
		if err := c.Images[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
