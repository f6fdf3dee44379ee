package layout

import (
	"html"
	"strings"

	"github.com/goliatone/go-layout/pkg/model"
)

const defaultSubmitCaption = "Submit"

// methodOverrides maps form methods browsers cannot send to the value of
// the hidden _method field.
var methodOverrides = map[string]string{
	"put":    "PUT",
	"patch":  "PATCH",
	"update": "PATCH",
	"delete": "DELETE",
}

// Form wraps its content in a <form> with a submit button and, once
// AddCSRFTag has run, a CSRF field.
type Form struct {
	content
	action        string
	method        string
	remote        bool
	viewOnly      bool
	submitCaption string
	csrfTag       string
}

var (
	_ Node         = (*Form)(nil)
	_ CSRFInjector = (*Form)(nil)
)

func newForm(e *env) *Form {
	f := &Form{method: "post", submitCaption: defaultSubmitCaption}
	f.env = e
	return f
}

// Action sets the URL the form posts to.
func (f *Form) Action(url string) { f.action = url }

// Method sets the HTTP method. put, patch, update and delete post with a
// _method override.
func (f *Form) Method(method string) { f.method = strings.ToLower(strings.TrimSpace(method)) }

// Remote marks the form for submission over XHR.
func (f *Form) Remote() { f.remote = true }

// ViewOnly drops the submit button.
func (f *Form) ViewOnly() { f.viewOnly = true }

// SubmitCaption sets the submit button text.
func (f *Form) SubmitCaption(caption string) { f.submitCaption = caption }

// AddCSRFTag stores the pre-rendered CSRF field.
func (f *Form) AddCSRFTag(tag string) { f.csrfTag = tag }

// Row appends a row built by fn.
func (f *Form) Row(fn func(*Row) error) error {
	return build(&f.container, newRow(f.env), fn)
}

// FoldUp appends a collapsible block built by fn.
func (f *Form) FoldUp(fn func(*FoldUp) error) error {
	return build(&f.container, newFoldUp(f.env), fn)
}

// Render produces the form element.
func (f *Form) Render() (string, error) {
	if f.Invisible() {
		return "", nil
	}
	body, err := f.renderChildren()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<form action="` + html.EscapeString(f.action) + `" accept-charset="utf-8" method="` + f.httpMethod() + `" class="crossbeams-form"`)
	if f.remote {
		builder.WriteString(` data-remote="true"`)
	}
	builder.WriteString(">\n")
	if f.csrfTag != "" {
		builder.WriteString(f.csrfTag + "\n")
	}
	if override, ok := methodOverrides[f.method]; ok {
		builder.WriteString(`<input type="hidden" name="_method" value="` + override + `">` + "\n")
	}
	if notice := f.baseErrors(); notice != "" {
		builder.WriteString(notice + "\n")
	}
	builder.WriteString(body)
	if !f.viewOnly {
		builder.WriteString("\n" + `<div class="crossbeams-actions">` + "\n")
		builder.WriteString(`<input type="submit" name="commit" value="` + html.EscapeString(f.submitCaption) + `" data-disable-with="Submitting" class="white bg-green br2 dim pa3 ba b--near-white">`)
		builder.WriteString("\n</div>")
	}
	builder.WriteString("\n</form>")
	return builder.String(), nil
}

func (f *Form) httpMethod() string {
	if f.method == "get" {
		return "GET"
	}
	return "POST"
}

// baseErrors renders the form-level messages as an error notice.
func (f *Form) baseErrors() string {
	messages := f.env.page.FieldErrors(model.BaseErrorKey)
	if len(messages) == 0 {
		return ""
	}
	escaped := make([]string, len(messages))
	for i, msg := range messages {
		escaped[i] = html.EscapeString(msg)
	}
	return renderNotice(NoticeError, "", strings.Join(escaped, "<br>"))
}
