package spec

// File is the parsed pipeline document. Field names mirror the on-disk
// YAML shape; validation lives in internal/config.
type File struct {
	SchemaVersion string `yaml:"schema_version" koanf:"schema_version"`

	// Module names the plugin namespace the steps are resolved from.
	Module string `yaml:"module" koanf:"module"`

	// Ordered list of transform steps applied to the input.
	// Order is the application order.
	Steps []string `yaml:"steps" koanf:"steps"`
}
