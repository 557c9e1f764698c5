package submission

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formpage/pkg/model"
	"github.com/goliatone/go-formpage/pkg/testsupport"
)

func TestDecode_ValidSubmission(t *testing.T) {
	values := url.Values{
		"firstname": {"Jane"},
		"lastname":  {"Doe"},
		"age":       {"30"},
	}

	decoded, fieldErrors := Decode(testsupport.RegistrationForm(), values)
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}

	if got := decoded.String("firstname"); got != "Jane" {
		t.Fatalf("expected Jane, got %q", got)
	}
	if got := decoded.String("lastname"); got != "Doe" {
		t.Fatalf("expected Doe, got %q", got)
	}
	if got := decoded.Int("age"); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	decoded, fieldErrors := Decode(testsupport.RegistrationForm(), url.Values{})

	want := map[string][]string{
		"firstname": {"field required"},
		"lastname":  {"field required"},
		"age":       {"field required"},
	}
	if diff := cmp.Diff(want, fieldErrors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if decoded.Raw["firstname"] != "" {
		t.Fatalf("expected raw values recorded, got %#v", decoded.Raw)
	}
}

func TestDecode_InvalidInteger(t *testing.T) {
	values := url.Values{
		"firstname": {"Jane"},
		"lastname":  {"Doe"},
		"age":       {"thirty"},
	}

	_, fieldErrors := Decode(testsupport.RegistrationForm(), values)
	if diff := cmp.Diff([]string{"value is not a valid integer"}, fieldErrors["age"]); diff != "" {
		t.Fatalf("age errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_NumericBounds(t *testing.T) {
	form := testsupport.RegistrationForm()

	cases := []struct {
		age  string
		want string
	}{
		{"-1", "ensure this value is greater than or equal to 0"},
		{"151", "ensure this value is less than or equal to 150"},
	}
	for _, tc := range cases {
		values := url.Values{
			"firstname": {"Jane"},
			"lastname":  {"Doe"},
			"age":       {tc.age},
		}
		_, fieldErrors := Decode(form, values)
		if diff := cmp.Diff([]string{tc.want}, fieldErrors["age"]); diff != "" {
			t.Fatalf("age %s errors mismatch (-want +got):\n%s", tc.age, diff)
		}
	}
}

func TestDecode_ExclusiveBounds(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{
				Name: "score", Type: model.FieldTypeNumber, Required: true,
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMin, Params: map[string]string{"value": "0", "exclusive": "true"}},
				},
			},
		},
	}

	_, fieldErrors := Decode(form, url.Values{"score": {"0"}})
	if diff := cmp.Diff([]string{"ensure this value is greater than 0"}, fieldErrors["score"]); diff != "" {
		t.Fatalf("score errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_StringRules(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{
				Name: "code", Type: model.FieldTypeString, Required: true,
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "3"}},
					{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": "5"}},
					{Kind: model.ValidationRulePattern, Params: map[string]string{"pattern": "^[a-z]+$"}},
				},
			},
		},
	}

	_, fieldErrors := Decode(form, url.Values{"code": {"ab"}})
	if diff := cmp.Diff([]string{"ensure this value has at least 3 characters"}, fieldErrors["code"]); diff != "" {
		t.Fatalf("short code mismatch (-want +got):\n%s", diff)
	}

	_, fieldErrors = Decode(form, url.Values{"code": {"ABC"}})
	if diff := cmp.Diff([]string{`string does not match pattern "^[a-z]+$"`}, fieldErrors["code"]); diff != "" {
		t.Fatalf("pattern mismatch (-want +got):\n%s", diff)
	}

	decoded, fieldErrors := Decode(form, url.Values{"code": {"abc"}})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}
	if decoded.String("code") != "abc" {
		t.Fatalf("unexpected decoded value %q", decoded.String("code"))
	}
}

func TestDecode_BooleanField(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{Name: "newsletter", Type: model.FieldTypeBoolean},
		},
	}

	decoded, fieldErrors := Decode(form, url.Values{"newsletter": {"on"}})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}
	if !decoded.Bool("newsletter") {
		t.Fatal("expected newsletter true")
	}

	// Unchecked checkboxes never appear in the payload.
	decoded, fieldErrors = Decode(form, url.Values{})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}
	if decoded.Bool("newsletter") {
		t.Fatal("expected newsletter false when absent")
	}

	_, fieldErrors = Decode(form, url.Values{"newsletter": {"maybe"}})
	if diff := cmp.Diff([]string{"value is not a valid boolean"}, fieldErrors["newsletter"]); diff != "" {
		t.Fatalf("boolean errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_EnumField(t *testing.T) {
	form := model.FormModel{
		Fields: []model.Field{
			{Name: "plan", Type: model.FieldTypeString, Required: true, Enum: []any{"free", "pro"}},
		},
	}

	_, fieldErrors := Decode(form, url.Values{"plan": {"enterprise"}})
	if diff := cmp.Diff([]string{"value is not a permitted choice"}, fieldErrors["plan"]); diff != "" {
		t.Fatalf("enum errors mismatch (-want +got):\n%s", diff)
	}

	decoded, fieldErrors := Decode(form, url.Values{"plan": {"pro"}})
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}
	if decoded.String("plan") != "pro" {
		t.Fatalf("unexpected plan %q", decoded.String("plan"))
	}
}

func TestDecode_UnknownKeysIgnored(t *testing.T) {
	values := url.Values{
		"firstname": {"Jane"},
		"lastname":  {"Doe"},
		"age":       {"30"},
		"extra":     {"ignored"},
	}

	decoded, fieldErrors := Decode(testsupport.RegistrationForm(), values)
	if fieldErrors != nil {
		t.Fatalf("unexpected errors %v", fieldErrors)
	}
	if _, ok := decoded.Values["extra"]; ok {
		t.Fatal("expected unknown key to be ignored")
	}
}
