// File: config.go
// Role: Declarative graph configuration (YAML) with struct-tag validation.
// AI-HINT (file):
//   - LoadConfig starts from DefaultConfig, so omitted keys keep their defaults.
//   - Unknown YAML keys are rejected.

package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the file-level form of the GraphOptions.
type Config struct {
	AutoID             bool   `yaml:"auto_id"`
	Directed           bool   `yaml:"directed"`
	KeyField           string `yaml:"key_field" validate:"required,printascii,ne=_id,nefield=ValueField"`
	ValueField         string `yaml:"value_field" validate:"required,printascii,ne=_id"`
	CreateMissingNodes bool   `yaml:"create_missing_nodes"`
}

// DefaultConfig mirrors NewGraph's defaults.
func DefaultConfig() Config {
	return Config{AutoID: true, KeyField: DefaultKeyField, ValueField: DefaultValueField}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the result.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "nefield":
		return field + " must differ from " + strings.ToLower(fe.Param())
	case "ne":
		return fmt.Sprintf("%s must not be %q", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// Options converts c to GraphOptions.
func (c Config) Options() []GraphOption {
	opts := []GraphOption{
		WithAutoID(c.AutoID),
		WithDirected(c.Directed),
		WithKeyField(c.KeyField),
		WithValueField(c.ValueField),
	}
	if c.CreateMissingNodes {
		opts = append(opts, WithCreateMissingNodes())
	}

	return opts
}

// NewFromConfig validates cfg and builds a graph; extra opts apply after cfg.
func NewFromConfig(cfg Config, opts ...GraphOption) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewGraph(append(cfg.Options(), opts...)...), nil
}
