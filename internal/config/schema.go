package config

// PromptsConfig is the semantic-stage prompt catalog.
type PromptsConfig struct {
	Preamble  string           `yaml:"preamble"`
	Templates []PromptTemplate `yaml:"templates"`
}

// PromptTemplate is a text/template body rendered with Preamble, Label and Input.
type PromptTemplate struct {
	Category string `yaml:"category"`
	Prompt   string `yaml:"prompt"`
}

// Template returns the prompt registered for a category name.
func (c *PromptsConfig) Template(categoryName string) (PromptTemplate, bool) {
	for _, t := range c.Templates {
		if t.Category == categoryName {
			return t, true
		}
	}
	return PromptTemplate{}, false
}
