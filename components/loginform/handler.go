package loginform

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/goliatone/go-formpage/pkg/render"
	"github.com/goliatone/go-formpage/pkg/renderers/vanilla"
	"github.com/goliatone/go-formpage/pkg/submission"
)

type messageResponse struct {
	Message string `json:"message"`
}

type fieldIssue struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

type detailResponse struct {
	Detail []fieldIssue `json:"detail"`
}

// PageHandler serves the login form page. JSON clients receive the welcome
// message instead of markup.
func (c *Component) PageHandler(basePath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !c.allow(w, r) {
			return
		}

		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, messageResponse{Message: WelcomeMessage})
			return
		}

		page, err := c.renderForm(r, basePath, render.RenderOptions{})
		if err != nil {
			log.Printf("loginform: render page: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeHTML(w, r, http.StatusOK, page)
	})
}

// SubmitHandler validates the posted form. Invalid submissions re-render the
// page with inline errors (or a JSON detail payload); valid ones answer with
// the greeting.
func (c *Component) SubmitHandler(basePath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !c.allow(w, r) {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, c.opts.MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		form, err := c.FormModel(r.Context(), basePath)
		if err != nil {
			log.Printf("loginform: build model: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		decoded, fieldErrors := submission.Decode(form, r.PostForm)
		if len(fieldErrors) > 0 {
			if wantsJSON(r) {
				writeJSON(w, http.StatusUnprocessableEntity, detailPayload(fieldErrors))
				return
			}
			mapping := render.MapErrorPayload(form, fieldErrors)
			page, err := c.renderForm(r, basePath, render.RenderOptions{
				Values:     decoded.Raw,
				Errors:     mapping.Fields,
				FormErrors: mapping.Form,
			})
			if err != nil {
				log.Printf("loginform: render errors: %v", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			writeHTML(w, r, http.StatusUnprocessableEntity, page)
			return
		}

		greeting := Greeting(
			decoded.String("firstname"),
			decoded.String("lastname"),
			decoded.Int("age"),
		)

		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, messageResponse{Message: greeting})
			return
		}

		page, err := c.renderer.RenderMessage(r.Context(), vanilla.Message{
			Title:    "Registration Complete",
			Body:     greeting,
			BackHref: mountPath(basePath, c.opts.PagePath),
		}, c.renderOptions(render.RenderOptions{}))
		if err != nil {
			log.Printf("loginform: render result: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeHTML(w, r, http.StatusOK, page)
	})
}

func (c *Component) renderForm(r *http.Request, basePath string, options render.RenderOptions) ([]byte, error) {
	form, err := c.FormModel(r.Context(), basePath)
	if err != nil {
		return nil, err
	}
	return c.renderer.Render(r.Context(), form, c.renderOptions(options))
}

func (c *Component) renderOptions(options render.RenderOptions) render.RenderOptions {
	if options.Stylesheet == "" {
		options.Stylesheet = c.opts.Stylesheet
	}
	if options.Theme == nil {
		options.Theme = c.opts.Theme
	}
	return options
}

func (c *Component) allow(w http.ResponseWriter, r *http.Request) bool {
	if c.opts.Guard == nil {
		return true
	}
	if err := c.opts.Guard(r); err != nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return false
	}
	return true
}

// detailPayload shapes field errors into a detail list with body locators so
// API clients can attribute each message to its input.
func detailPayload(fieldErrors map[string][]string) detailResponse {
	issues := make([]fieldIssue, 0, len(fieldErrors))
	for _, name := range sortedFieldNames(fieldErrors) {
		for _, msg := range fieldErrors[name] {
			issues = append(issues, fieldIssue{
				Loc: []string{"body", name},
				Msg: msg,
			})
		}
	}
	return detailResponse{Detail: issues}
}

func sortedFieldNames(fieldErrors map[string][]string) []string {
	names := make([]string, 0, len(fieldErrors))
	for name := range fieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return false
	}
	if strings.Contains(accept, "text/html") {
		return false
	}
	return strings.Contains(accept, "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page)
}
