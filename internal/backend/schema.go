package backend

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// userSchema accepts a user object, an array of them (the users endpoint is
// inconsistent about this) or null.
const userSchema = `{
	"definitions": {
		"user": {
			"type": "object",
			"properties": {
				"email":         {"type": ["string", "null"]},
				"userFirstName": {"type": ["string", "null"]},
				"userLastName":  {"type": ["string", "null"]},
				"phone":         {"type": ["string", "null"]},
				"birthday":      {"type": ["string", "null"]},
				"address":       {"type": ["string", "null"]}
			}
		}
	},
	"oneOf": [
		{"$ref": "#/definitions/user"},
		{"type": "array", "items": {"oneOf": [{"$ref": "#/definitions/user"}, {"type": "null"}]}},
		{"type": "null"}
	]
}`

const reservationsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": ["string", "integer"]},
			"flight": {
				"type": ["object", "null"],
				"properties": {
					"aircraftType":  {"type": ["string", "null"]},
					"departureName": {"type": ["string", "null"]},
					"arrivalName":   {"type": ["string", "null"]},
					"departureTime": {"type": ["string", "null"]}
				}
			},
			"selectedSeats": {
				"type": ["array", "null"],
				"items": {"type": ["string", "integer"]}
			}
		}
	}
}`

// contract validates response bodies against a JSON schema.
type contract struct {
	name   string
	schema *gojsonschema.Schema
}

func newContract(name, source string) (*contract, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	return &contract{name: name, schema: schema}, nil
}

func (c *contract) check(body []byte) error {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%s payload is not valid JSON: %w", c.name, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s payload violates contract: %s", c.name, strings.Join(msgs, "; "))
}
