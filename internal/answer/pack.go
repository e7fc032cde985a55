package answer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Pack is a set of reference answers keyed by question id, as produced by the
// content pipeline. The engine treats packs as read-only input.
type Pack struct {
	Name    string           `yaml:"name"`
	Version string           `yaml:"version,omitempty"`
	Answers map[string]*Spec `yaml:"answers"`
}

// packSchemaJSON is the embedded JSON Schema for answer pack files.
const packSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "answers"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "string"},
    "answers": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "required": ["primary"],
        "properties": {
          "primary": {"type": "string", "minLength": 1},
          "alternates": {"type": "array", "items": {"type": "string"}},
          "prompt_for_more": {"type": "array", "items": {"type": "string"}},
          "phonetic_variants": {"type": "array", "items": {"type": "string"}},
          "type": {
            "type": "string",
            "enum": ["person", "place", "thing", "concept", "number", "date", "title", "scientific"]
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var packSchema *jsonschema.Schema

var schemaErrPrinter = message.NewPrinter(language.English)

func init() {
	var doc any
	if err := json.Unmarshal([]byte(packSchemaJSON), &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded pack schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("pack.schema.json", doc); err != nil {
		panic(fmt.Sprintf("failed to add pack schema resource: %v", err))
	}

	sch, err := compiler.Compile("pack.schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile pack schema: %v", err))
	}
	packSchema = sch
}

// LoadPack reads and validates an answer pack from a YAML file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answer pack: %w", err)
	}
	return ParsePack(data)
}

// ParsePack validates raw YAML bytes against the pack schema and decodes them.
func ParsePack(data []byte) (*Pack, error) {
	if errs := ValidatePackBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid answer pack:\n  %s", strings.Join(errs, "\n  "))
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("decoding answer pack: %w", err)
	}

	// The schema enforces shape; re-run the Spec invariants (dedup, type)
	// since YAML decoding bypasses New.
	for id, spec := range pack.Answers {
		if spec.Type == "" {
			spec.Type = TypeThing
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		spec.Alternates = dedupe(spec.Alternates, spec.Primary)
		spec.PromptForMore = dedupe(spec.PromptForMore, spec.Primary)
		spec.PhoneticVariants = dedupe(spec.PhoneticVariants, spec.Primary)
	}

	return &pack, nil
}

// ValidatePackBytes validates raw YAML against the embedded pack schema and
// returns one message per violation.
func ValidatePackBytes(data []byte) []string {
	var yamlDoc any
	if err := yaml.Unmarshal(data, &yamlDoc); err != nil {
		return []string{fmt.Sprintf("YAML parse error: %v", err)}
	}

	err := packSchema.Validate(jsonCompatible(yamlDoc))
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}

	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(schemaErrPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// jsonCompatible converts yaml.v3 decoded values into the shapes the schema
// validator expects.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			out[k] = jsonCompatible(v2)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v2 := range val {
			out[i] = jsonCompatible(v2)
		}
		return out
	default:
		return val
	}
}
