package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeHiddenFields(t *testing.T) {
	base := map[string]string{"_csrf": "token-1"}

	merged := MergeHiddenFields(base,
		Hidden("_csrf", "token-2"),
		Hidden("  ", "dropped"),
		MethodOverride("put"),
	)

	want := map[string]string{
		"_csrf":   "token-2",
		"_method": "PUT",
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if base["_csrf"] != "token-1" {
		t.Fatal("expected base map to stay untouched")
	}
}

func TestMergeHiddenFields_EmptyInputs(t *testing.T) {
	if got := MergeHiddenFields(nil); got != nil {
		t.Fatalf("expected nil for empty merge, got %v", got)
	}
	if got := MergeHiddenFields(nil, Hidden("", "value")); got != nil {
		t.Fatalf("expected nil when every field is dropped, got %v", got)
	}
}

func TestSortedHiddenFields(t *testing.T) {
	fields := map[string]string{
		"zeta":    "3",
		"_method": "PUT",
		"alpha":   "1",
		" ":       "dropped",
	}

	want := []HiddenField{
		{Name: "_method", Value: "PUT"},
		{Name: "alpha", Value: "1"},
		{Name: "zeta", Value: "3"},
	}
	if diff := cmp.Diff(want, SortedHiddenFields(fields)); diff != "" {
		t.Fatalf("sorted mismatch (-want +got):\n%s", diff)
	}
	if got := SortedHiddenFields(nil); got != nil {
		t.Fatalf("expected nil for empty map, got %v", got)
	}
}

func TestCSRFToken(t *testing.T) {
	field := CSRFToken("csrf_token", "abc")
	if field.Name != "csrf_token" || field.Value != "abc" {
		t.Fatalf("unexpected field %#v", field)
	}
}
