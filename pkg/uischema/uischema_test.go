package uischema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/testsupport"
)

const overlayYAML = `form: login
title: Login / Registration
submitLabel: Submit
fields:
  firstname:
    label: First Name
    placeholder: Jane
    autocomplete: given-name
  age:
    label: Age
    help: 'Between <strong>0</strong> and 150. <script>alert(1)</script>'
`

func TestParse_Overlay(t *testing.T) {
	doc, err := Parse([]byte(overlayYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Form != "login" {
		t.Fatalf("unexpected form %q", doc.Form)
	}
	if doc.Title != "Login / Registration" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if hints := doc.Fields["firstname"]; hints.Label != "First Name" || hints.Autocomplete != "given-name" {
		t.Fatalf("unexpected firstname hints %#v", hints)
	}
}

func TestParse_SanitizesHelpMarkup(t *testing.T) {
	doc, err := Parse([]byte(overlayYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	help := doc.Fields["age"].Help
	if !strings.Contains(help, "<strong>0</strong>") {
		t.Fatalf("expected inline formatting preserved, got %q", help)
	}
	if strings.Contains(help, "<script>") || strings.Contains(help, "alert(1)") {
		t.Fatalf("expected script stripped, got %q", help)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("fields: [broken")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"overlays/login.yaml": &fstest.MapFile{Data: []byte(overlayYAML)},
	}

	doc, err := Load(fsys, "overlays/login.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Form != "login" {
		t.Fatalf("unexpected form %q", doc.Form)
	}

	if _, err := Load(fsys, "overlays/missing.yaml"); err == nil {
		t.Fatal("expected error for missing overlay")
	}
}

func TestAppliesTo(t *testing.T) {
	doc := Document{Form: "login"}
	if !doc.AppliesTo("login") {
		t.Fatal("expected overlay to apply to its own form")
	}
	if doc.AppliesTo("other") {
		t.Fatal("expected overlay to skip other forms")
	}
	if !(Document{}).AppliesTo("anything") {
		t.Fatal("expected unpinned overlay to apply everywhere")
	}
}

func TestDecorator_AppliesHints(t *testing.T) {
	doc, err := Parse([]byte(overlayYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	form := testsupport.RegistrationForm()
	if err := doc.Decorator().Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	if form.Title != "Login / Registration" {
		t.Fatalf("unexpected title %q", form.Title)
	}
	if form.SubmitLabel != "Submit" {
		t.Fatalf("unexpected submit label %q", form.SubmitLabel)
	}

	first, _ := form.Field("firstname")
	if first.Label != "First Name" || first.Placeholder != "Jane" || first.Autocomplete != "given-name" {
		t.Fatalf("unexpected firstname field %#v", first)
	}

	last, _ := form.Field("lastname")
	if last.Label != "Lastname" {
		t.Fatalf("expected untouched lastname label, got %q", last.Label)
	}
}

func TestDecorator_AppliesWidgetHint(t *testing.T) {
	doc, err := Parse([]byte(`form: login
fields:
  lastname:
    widget: textarea
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	form := testsupport.RegistrationForm()
	if err := doc.Decorator().Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}

	last, _ := form.Field("lastname")
	if got := last.Meta("widget"); got != "textarea" {
		t.Fatalf("expected widget metadata textarea, got %q", got)
	}
	first, _ := form.Field("firstname")
	if got := first.Meta("widget"); got != "" {
		t.Fatalf("expected no widget metadata on firstname, got %q", got)
	}
}

func TestDecorator_SkipsOtherForms(t *testing.T) {
	doc := Document{Form: "other", Title: "Other"}

	form := testsupport.RegistrationForm()
	if err := doc.Decorator().Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if form.Title == "Other" {
		t.Fatal("expected overlay pinned to another form to be skipped")
	}
}

func TestDecorator_NilForm(t *testing.T) {
	doc := Document{}
	var form *model.FormModel
	if err := doc.Decorator().Decorate(form); err != nil {
		t.Fatalf("decorate nil: %v", err)
	}
}
