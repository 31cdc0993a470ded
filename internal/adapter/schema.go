package adapter

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Adpoint answers with bare JSON arrays. Only the fields the gateway
// forwards are required; anything else is allowed and later dropped.
const customersSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["CustomerID", "CustomerName", "CustomerOwner", "Active", "LocalSegment"],
		"properties": {
			"CustomerID":    {"type": "integer"},
			"CustomerName":  {"type": "string"},
			"CustomerOwner": {"type": "string"},
			"Active":        {"type": "boolean"},
			"LocalSegment":  {"type": "string"}
		}
	}
}`

const contactsSchemaJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": [
			"ContactID", "CustomerID", "LastName", "FirstName", "MiddleName",
			"Position", "Phone", "Mobile", "Mail", "Active", "ContactCategory"
		],
		"properties": {
			"ContactID":       {"type": "integer"},
			"CustomerID":      {"type": "integer"},
			"LastName":        {"type": "string"},
			"FirstName":       {"type": "string"},
			"MiddleName":      {"type": "string"},
			"Position":        {"type": "string"},
			"Phone":           {"type": "string"},
			"Mobile":          {"type": "string"},
			"Mail":            {"type": "string"},
			"Active":          {"type": "boolean"},
			"ContactCategory": {"type": "string"}
		}
	}
}`

var (
	customersSchema = mustCompileSchema(customersSchemaJSON)
	contactsSchema  = mustCompileSchema(contactsSchemaJSON)
)

func mustCompileSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("compile adpoint schema: %v", err))
	}
	return schema
}

// validatePayload checks body against schema and returns
// ErrInvalidUpstreamPayload describing every violation.
func validatePayload(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUpstreamPayload, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidUpstreamPayload, strings.Join(errs, "; "))
	}

	return nil
}
