package model

// Config is the construction-time configuration of one interception session.
// It is fixed before the first class is processed and never changes during a
// run.
type Config struct {
	// Marker is the fully qualified name of the marker annotation applied to
	// synthesized methods, e.g. "com.example.Generated".
	Marker string `validate:"required,fqname" yaml:"marker"`
	// Visible controls whether the marker is retained in the serialized
	// artifact or stays compile-time-only.
	Visible bool `yaml:"visible"`
}
