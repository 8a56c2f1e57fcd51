// Package prompt renders the instructions sent to the generation service.
// Every function is a pure string builder; field values are interpolated
// verbatim.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/joestump/speechwriter/internal/speech"
)

// Token ceilings per call site.
const (
	GenerateMaxTokens = 2000
	ChatMaxTokens     = 500
	RewriteMaxTokens  = 300
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

type generationData struct {
	Speaker      string
	Sex          speech.Sex
	Type         speech.Type
	GroomName    string
	BrideName    string
	Relationship string
	Stories      string
	Tone         speech.Tone
	Length       speech.Length
}

// Generation renders the full-speech prompt for in.
func Generation(in speech.GenerateInput) (string, error) {
	return execute("generate.tmpl", generationData{
		Speaker:      in.FullName(),
		Sex:          in.Sex,
		Type:         in.Type,
		GroomName:    in.GroomName,
		BrideName:    in.BrideName,
		Relationship: in.Relationship,
		Stories:      in.Stories,
		Tone:         in.Tone,
		Length:       in.Length,
	})
}

// Context is the speech summary handed to the assistant prompts. Body is the
// current, possibly locally edited, speech text.
type Context struct {
	Type         speech.Type
	GroomName    string
	BrideName    string
	Relationship string
	Tone         speech.Tone
	Length       speech.Length
	Body         string
}

// String renders the context block. Browsers send this same block as the
// speechContext field of the chat endpoint.
func (c Context) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Speech Type: %s\n", c.Type)
	fmt.Fprintf(&b, "Groom: %s\n", c.GroomName)
	fmt.Fprintf(&b, "Bride: %s\n", c.BrideName)
	fmt.Fprintf(&b, "Relationship: %s\n", c.Relationship)
	fmt.Fprintf(&b, "Tone: %s\n", c.Tone)
	fmt.Fprintf(&b, "Length: %s\n", c.Length)
	fmt.Fprintf(&b, "Full Speech: %s", c.Body)
	return b.String()
}

type assistData struct {
	Context  string
	Selected string
	Message  string
}

// Chat renders a question about the speech. speechContext is usually
// Context.String().
func Chat(speechContext, question, selected string) (string, error) {
	return execute("chat.tmpl", assistData{Context: speechContext, Selected: selected, Message: question})
}

// Rewrite renders a request to rewrite only the selected span.
func Rewrite(speechContext, instructions, selected string) (string, error) {
	return execute("rewrite.tmpl", assistData{Context: speechContext, Selected: selected, Message: instructions})
}

// ForMode picks the assistant template and token ceiling for mode.
func ForMode(mode speech.Mode, speechContext, message, selected string) (string, int, error) {
	switch mode {
	case speech.ModeRewrite:
		p, err := Rewrite(speechContext, message, selected)
		return p, RewriteMaxTokens, err
	case speech.ModeChat:
		p, err := Chat(speechContext, message, selected)
		return p, ChatMaxTokens, err
	default:
		return "", 0, fmt.Errorf("%w: mode %q", speech.ErrInvalidChoice, mode)
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
