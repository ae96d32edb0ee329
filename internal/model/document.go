package model

// ClassDocument is the YAML description of one class-compilation unit: the
// event stream a host front end would feed through the builder chain.
type ClassDocument struct {
	Name       string           `yaml:"name"`
	Version    int              `yaml:"version,omitempty"`
	Access     []string         `yaml:"access,omitempty"`
	Signature  string           `yaml:"signature,omitempty"`
	Super      string           `yaml:"super,omitempty"`
	Interfaces []string         `yaml:"interfaces,omitempty"`
	Source     string           `yaml:"source,omitempty"`
	Origin     Origin           `yaml:"origin,omitempty"`
	Fields     []FieldDocument  `yaml:"fields,omitempty"`
	Methods    []MethodDocument `yaml:"methods,omitempty"`
}

// MethodDocument describes one method-definition event.
type MethodDocument struct {
	Name       string   `yaml:"name"`
	Descriptor string   `yaml:"descriptor"`
	Signature  string   `yaml:"signature,omitempty"`
	Access     []string `yaml:"access,omitempty"`
	Exceptions []string `yaml:"exceptions,omitempty"`
	Origin     Origin   `yaml:"origin,omitempty"`
}

// FieldDocument describes one field-definition event.
type FieldDocument struct {
	Name       string   `yaml:"name"`
	Descriptor string   `yaml:"descriptor"`
	Signature  string   `yaml:"signature,omitempty"`
	Access     []string `yaml:"access,omitempty"`
	Origin     Origin   `yaml:"origin,omitempty"`
}
