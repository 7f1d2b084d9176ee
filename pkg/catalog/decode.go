package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON catalog document, checks it against the
// catalog schema and validates the resulting definition.
func Decode(data []byte) (*Catalog, error) {
	def, err := DecodeDefinition(data)
	if err != nil {
		return nil, err
	}
	return New(def)
}

// DecodeDefinition parses and schema-checks a document without the semantic
// validation performed by New.
func DecodeDefinition(data []byte) (Definition, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Definition{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	doc, err := normalize(raw)
	if err != nil {
		return Definition{}, err
	}

	sch, err := documentSchema()
	if err != nil {
		return Definition{}, err
	}
	if err := sch.Validate(doc); err != nil {
		return Definition{}, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return Definition{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return Definition{}, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return def, nil
}

// normalize converts a YAML tree into the JSON value model expected by the
// schema validator.
func normalize(raw any) (any, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog is not representable as JSON: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to normalize catalog: %w", err)
	}
	return doc, nil
}

// Encode renders a catalog as a YAML document accepted by Decode.
func Encode(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c.def); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalDefinition(def Definition) ([]byte, error) {
	return json.Marshal(def)
}
