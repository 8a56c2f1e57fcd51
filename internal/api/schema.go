package api

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// maxBodyBytes caps request bodies. Stories and speech contexts are prose, so
// this is generous.
const maxBodyBytes = 1 << 20

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	generateSpeechSchema = mustCompileSchema("schemas/generate_speech.json")
	chatSchema           = mustCompileSchema("schemas/chat.json")
)

func mustCompileSchema(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("load schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// decodeValid reads a JSON body, validates it against schema and decodes it
// into dst. The returned error message is safe to show to the client.
func decodeValid(r *http.Request, schema *jsonschema.Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.New("could not read request body")
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return errors.New("request body must be valid JSON")
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return errors.New(describeValidation(ve))
		}
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return errors.New("request body does not match the expected shape")
	}
	return nil
}

// describeValidation flattens a validation error tree into its leaf messages,
// each prefixed with the offending field.
func describeValidation(ve *jsonschema.ValidationError) string {
	var msgs []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := strings.TrimPrefix(e.InstanceLocation, "/")
			if field == "" {
				msgs = append(msgs, e.Message)
			} else {
				msgs = append(msgs, field+": "+e.Message)
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	return "invalid request: " + strings.Join(msgs, "; ")
}
