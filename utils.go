package jsonschema

import (
	"fmt"
	"strings"
)

// replace substitutes {name} placeholders in template with values
// from params, matching the {code, params} pairs in locales/*.json.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
