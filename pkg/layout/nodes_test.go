package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-layout/pkg/icon"
	"github.com/goliatone/go-layout/pkg/model"
	"github.com/goliatone/go-layout/pkg/visibility"
	"github.com/google/go-cmp/cmp"
)

func mustRender(t *testing.T, node Node) string {
	t.Helper()
	out, err := node.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}

func TestLinkStyles(t *testing.T) {
	cases := []struct {
		name string
		opts LinkOptions
		want string
	}{
		{
			name: "plain",
			opts: LinkOptions{Text: "Home", URL: "/"},
			want: `<a href="/">Home</a>`,
		},
		{
			name: "plain with class",
			opts: LinkOptions{Text: "Home", URL: "/", CSSClass: "mr2"},
			want: `<a href="/" class="mr2">Home</a>`,
		},
		{
			name: "button popup",
			opts: LinkOptions{Text: "New", URL: "/items/new", Style: LinkStyleButton, Behaviour: LinkPopup},
			want: `<a href="/items/new" class="f6 link dim br2 ph3 pv2 dib white bg-silver" data-popup-dialog="true">New</a>`,
		},
		{
			name: "replace dialog with grid",
			opts: LinkOptions{Text: "Edit", URL: "/items/1?a=1&b=2", Behaviour: LinkReplaceDialog, GridID: "items"},
			want: `<a href="/items/1?a=1&amp;b=2" data-replace-dialog="true" data-grid-id="items">Edit</a>`,
		},
		{
			name: "back button",
			opts: LinkOptions{Text: "Back", URL: "/", Style: LinkStyleBackButton, CSSClass: "mt2"},
			want: `<a href="/" class="f6 link dim br2 ph3 pv2 dib white bg-dark-blue mt2">` + icon.Render(icon.Back) + ` Back</a>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			link, err := NewLink(tc.opts)
			if err != nil {
				t.Fatalf("new link: %v", err)
			}
			if diff := cmp.Diff(tc.want, mustRender(t, link)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkValidation(t *testing.T) {
	for _, opts := range []LinkOptions{{Text: "x"}, {URL: "/"}} {
		if _, err := NewLink(opts); !errors.Is(err, ErrMissingOption) {
			t.Fatalf("expected ErrMissingOption for %+v, got %v", opts, err)
		}
	}
	if _, err := NewLink(LinkOptions{Text: "x", URL: "/", Style: "fancy"}); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestFoldUp(t *testing.T) {
	fold := newFoldUp(newEnv(nil))
	if out := mustRender(t, fold); out != "" {
		t.Fatalf("expected empty fold up to render nothing, got %q", out)
	}

	if err := fold.AddText("TEXT", TextOptions{}); err != nil {
		t.Fatalf("add text: %v", err)
	}
	want := `<details class="pv2">` + "\n" +
		`<summary class="pointer b blue shadow-3 pa1 mr2">Details</summary>` + "\n" +
		wrapText("TEXT") + "\n</details>"
	if diff := cmp.Diff(want, mustRender(t, fold)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	fold.Caption("More")
	fold.Open()
	out := mustRender(t, fold)
	if !strings.HasPrefix(out, `<details class="pv2" open>`) || !strings.Contains(out, ">More</summary>") {
		t.Fatalf("unexpected open fold up:\n%s", out)
	}
}

func TestSectionCaption(t *testing.T) {
	section := newSection(newEnv(nil))
	section.ID("s1")
	section.Caption("Customer")
	if err := section.AddText("TEXT", TextOptions{}); err != nil {
		t.Fatalf("add text: %v", err)
	}
	want := `<section class="crossbeams_layout" id="s1">` + "\n<h2>Customer</h2>\n" + wrapText("TEXT") + "\n</section>"
	if diff := cmp.Diff(want, mustRender(t, section)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	section.HideCaption()
	if strings.Contains(mustRender(t, section), "<h2>") {
		t.Fatalf("expected caption to be hidden")
	}
}

func TestFormCSRFAndSubmit(t *testing.T) {
	page := NewPage(&model.PageConfig{
		Name:       "customer",
		FormObject: map[string]any{"name": "Acme"},
		FormErrors: map[string][]string{model.BaseErrorKey: {"Name & code clash", "Try again"}},
	})
	var inner *Form
	err := page.Section(func(s *Section) error {
		if err := s.Form(func(f *Form) error {
			f.Action("/customers/1")
			f.Method("update")
			f.Remote()
			f.SubmitCaption("Save")
			f.AddField("name", nil)
			return nil
		}); err != nil {
			return err
		}
		return s.FoldUp(func(fold *FoldUp) error {
			return fold.Form(func(f *Form) error {
				inner = f
				f.ViewOnly()
				f.AddField("name", &model.FieldConfig{Renderer: model.FieldTypeLabel})
				return nil
			})
		})
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	tag := CSRFTag("_csrf", "tok<en>")
	page.AddCSRFTag(tag)
	if inner.csrfTag != tag {
		t.Fatalf("expected nested form to receive the CSRF tag")
	}

	out := mustRender(t, page)
	for _, want := range []string{
		`<form action="/customers/1" accept-charset="utf-8" method="POST" class="crossbeams-form" data-remote="true">`,
		`<input type="hidden" name="_csrf" value="tok&lt;en&gt;">`,
		`<input type="hidden" name="_method" value="PATCH">`,
		`<div class="crossbeams-error-note">` + "\n<p>Name &amp; code clash<br>Try again</p>\n</div>",
		`value="Acme" name="customer[name]"`,
		`value="Save"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if got := strings.Count(out, `name="_csrf"`); got != 2 {
		t.Fatalf("expected CSRF field in both forms, got %d", got)
	}
	if got := strings.Count(out, `type="submit"`); got != 1 {
		t.Fatalf("expected only the editable form to have a submit button, got %d", got)
	}
}

func TestFieldVisibilityRules(t *testing.T) {
	page := NewPage(&model.PageConfig{
		Name:       "order",
		FormObject: map[string]any{"status": "closed", "notes": "n"},
		Options: model.PageOptions{
			Fields: map[string]model.FieldConfig{
				"notes":  {Renderer: model.FieldTypeTextarea, InvisibleWhen: `status == "closed"`},
				"reason": {HiddenWhen: `status != "void"`},
				"status": {Renderer: model.FieldTypeSelect},
			},
		},
	})
	if err := page.Row(func(r *Row) error {
		return r.SizedColumn(ColumnHalf, func(c *Column) error {
			c.AddField("notes", nil)
			c.AddField("reason", nil)
			return nil
		})
	}); err != nil {
		t.Fatalf("build: %v", err)
	}

	out := mustRender(t, page)
	if strings.Contains(out, "textarea") {
		t.Fatalf("expected notes to be invisible:\n%s", out)
	}
	for _, want := range []string{
		`<div class="crossbeams-col w-50">`,
		`id="order_reason_field_wrapper" class="crossbeams-field" hidden>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFieldRuleErrorsSurfaceOnRender(t *testing.T) {
	page := NewPage(&model.PageConfig{Name: "order"})
	page.AddField("notes", &model.FieldConfig{InvisibleWhen: `status = "closed"`})
	if _, err := page.Render(); err == nil || !strings.Contains(err.Error(), `field "notes"`) {
		t.Fatalf("expected rule error naming the field, got %v", err)
	}
}

func TestFieldUsesExtrasAndCustomEvaluator(t *testing.T) {
	calls := 0
	evaluator := visibility.EvaluatorFunc(func(fieldName, rule string, ctx visibility.Context) (bool, error) {
		calls++
		return ctx.Extras["role"] != "admin", nil
	})
	page := NewPage(&model.PageConfig{Name: "p"}, WithEvaluator(evaluator), WithExtras(map[string]any{"role": "admin"}))
	page.AddField("secret", &model.FieldConfig{InvisibleWhen: "role"})

	out := mustRender(t, page)
	if !strings.Contains(out, `id="p_secret"`) || calls == 0 {
		t.Fatalf("expected admin to see the field (calls=%d):\n%s", calls, out)
	}
}

func TestGridAndNotice(t *testing.T) {
	if _, err := NewGrid("", "/list", GridOptions{}); !errors.Is(err, ErrMissingOption) {
		t.Fatalf("expected ErrMissingOption, got %v", err)
	}
	grid, err := NewGrid("items", "/items/grid", GridOptions{Caption: "Items"})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	want := `<div class="crossbeams-grid-wrapper">` + "\n" +
		`<div class="crossbeams-grid-caption">Items</div>` + "\n" +
		`<div id="items" class="crossbeams-grid" data-grid-url="/items/grid" style="height:20rem;"></div>` + "\n</div>"
	if diff := cmp.Diff(want, mustRender(t, grid)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewNotice("x", NoticeOptions{Type: "loud"}); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	notice, err := NewNotice("Saved", NoticeOptions{Type: NoticeSuccess, Caption: "Done"})
	if err != nil {
		t.Fatalf("new notice: %v", err)
	}
	want = `<div class="crossbeams-success-note">` + "\n" + `<p class="b">Done</p>` + "\n<p>Saved</p>\n</div>"
	if diff := cmp.Diff(want, mustRender(t, notice)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSizedColumnRejectsUnknownWidth(t *testing.T) {
	row := newRow(newEnv(nil))
	if err := row.SizedColumn("huge", nil); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}
