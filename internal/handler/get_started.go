package handler

import (
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/speechwriter/internal/auth"
	"github.com/joestump/speechwriter/internal/speech"
	"github.com/joestump/speechwriter/internal/writer"
)

const wizardSteps = 3

// GetStartedHandler serves the three-step speech wizard:
// identity, then the couple, then style.
type GetStartedHandler struct {
	layout   layout
	writer   *writer.Service
	sessions *scs.SessionManager
}

// NewGetStartedHandler creates a new GetStartedHandler.
func NewGetStartedHandler(speeches SpeechStore, w *writer.Service, sm *scs.SessionManager, oidcEnabled bool) *GetStartedHandler {
	return &GetStartedHandler{
		layout:   layout{speeches: speeches, oidcEnabled: oidcEnabled},
		writer:   w,
		sessions: sm,
	}
}

type wizardPage struct {
	BasePage
	Step    int
	Form    speech.Fields
	Errors  map[string]string
	Error   string
	Sexes   []speech.Sex
	Types   []speech.Type
	Tones   []speech.Tone
	Lengths []speech.Length
}

// Progress is the width of the progress bar in percent.
func (p wizardPage) Progress() int {
	return p.Step * 100 / wizardSteps
}

// Scheme picks the colour scheme that follows the speaker's sex.
func (p wizardPage) Scheme() string {
	switch speech.Sex(p.Form.Sex) {
	case speech.SexMale, speech.SexFemale:
		return p.Form.Sex
	default:
		return "default"
	}
}

func (h *GetStartedHandler) newPage(r *http.Request, step int, f speech.Fields) wizardPage {
	return wizardPage{
		BasePage: h.layout.page(r, "Get Started", ""),
		Step:     step,
		Form:     f,
		Errors:   map[string]string{},
		Sexes:    speech.Sexes,
		Types:    speech.Types,
		Tones:    speech.Tones,
		Lengths:  speech.Lengths,
	}
}

// Show serves GET /get-started. A session user's identity is prefilled.
func (h *GetStartedHandler) Show(w http.ResponseWriter, r *http.Request) {
	f := speech.Fields{
		SpeechType: string(speech.TypeBestMan),
		Tone:       string(speech.Tones[0]),
		Length:     string(speech.LengthMedium),
	}
	if u := auth.UserFromContext(r.Context()); u != nil {
		f.FirstName, f.LastName, f.Email = u.FirstName, u.LastName, u.Email
		if u.Sex != speech.SexUnspecified {
			f.Sex = string(u.Sex)
			f.SpeechType = string(u.Sex.DefaultType())
		}
	}
	render(w, "get_started.html", h.newPage(r, 1, f))
}

// Submit serves POST /get-started. The form carries every field collected so
// far; each POST re-validates all steps up to the submitted one, so a step
// can't be skipped by editing the hidden inputs. The last step generates the
// speech and redirects to it.
func (h *GetStartedHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	f := fieldsFromForm(r)
	step, err := strconv.Atoi(r.PostFormValue("step"))
	if err != nil || step < 1 || step > wizardSteps {
		step = 1
	}

	if r.PostFormValue("action") == "back" {
		h.renderStep(w, r, h.newPage(r, max(step-1, 1), f))
		return
	}

	if step == 1 {
		// Choosing a sex pre-selects the matching speech type.
		if sex, err := speech.ParseSex(f.Sex); err == nil {
			f.SpeechType = string(sex.DefaultType())
		}
	}

	for s := 1; s <= step; s++ {
		if errs := validateStep(s, f); len(errs) > 0 {
			page := h.newPage(r, s, f)
			page.Errors = errs
			h.renderStep(w, r, page)
			return
		}
	}

	if step < wizardSteps {
		h.renderStep(w, r, h.newPage(r, step+1, f))
		return
	}

	in, err := f.Parse()
	if err != nil {
		page := h.newPage(r, 1, f)
		page.Error = err.Error()
		h.renderStep(w, r, page)
		return
	}

	sp, err := h.writer.Generate(r.Context(), in)
	if err != nil {
		page := h.newPage(r, wizardSteps, f)
		if errors.Is(err, writer.ErrNotConfigured) {
			page.Error = "Speech generation is not configured on this server."
		} else {
			log.Printf("handler: generate speech: %v", err)
			page.Error = "Failed to generate speech"
		}
		h.renderStep(w, r, page)
		return
	}

	// Only an account created by this submission is signed in. Typing the
	// email of an existing account never opens a session for it.
	if sp.NewUser && auth.UserFromContext(r.Context()) == nil {
		if err := auth.SignIn(r.Context(), h.sessions, sp.User); err != nil {
			log.Printf("handler: sign in after generate: %v", err)
		}
	}

	target := "/speeches/" + sp.ID
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// renderStep swaps just the wizard for HTMX requests.
func (h *GetStartedHandler) renderStep(w http.ResponseWriter, r *http.Request, page wizardPage) {
	if isHTMX(r) {
		renderPageFragment(w, "get_started.html", "wizard", page)
		return
	}
	render(w, "get_started.html", page)
}

func fieldsFromForm(r *http.Request) speech.Fields {
	v := func(k string) string { return strings.TrimSpace(r.PostFormValue(k)) }
	return speech.Fields{
		FirstName:    v("firstName"),
		LastName:     v("lastName"),
		Email:        v("email"),
		Sex:          v("sex"),
		SpeechType:   v("speechType"),
		GroomName:    r.PostFormValue("groomName"),
		BrideName:    r.PostFormValue("brideName"),
		Relationship: r.PostFormValue("relationship"),
		Stories:      r.PostFormValue("stories"),
		Tone:         v("tone"),
		Length:       v("length"),
	}
}

// validateStep returns field name to message for every problem in step s.
func validateStep(s int, f speech.Fields) map[string]string {
	errs := map[string]string{}
	required := func(name, value, msg string) {
		if strings.TrimSpace(value) == "" {
			errs[name] = msg
		}
	}

	switch s {
	case 1:
		required("firstName", f.FirstName, "First name is required")
		required("lastName", f.LastName, "Last name is required")
		if f.Email == "" {
			errs["email"] = "Email is required"
		} else if _, err := mail.ParseAddress(f.Email); err != nil {
			errs["email"] = "Enter a valid email address"
		}
		if _, err := speech.ParseSex(f.Sex); err != nil {
			errs["sex"] = "Select your sex"
		}
	case 2:
		if _, err := speech.ParseType(f.SpeechType); err != nil {
			errs["speechType"] = "Select a speech type"
		}
		required("groomName", f.GroomName, "Groom's name is required")
		required("brideName", f.BrideName, "Bride's name is required")
		required("relationship", f.Relationship, "Relationship is required")
	case 3:
		if _, err := speech.ParseTone(f.Tone); err != nil {
			errs["tone"] = "Select a tone"
		}
		if _, err := speech.ParseLength(f.Length); err != nil {
			errs["length"] = "Select a length"
		}
	}
	return errs
}
