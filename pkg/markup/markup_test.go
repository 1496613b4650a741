package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContentTagEscapesAttributesButNotChildren(t *testing.T) {
	got := ContentTag("div", Attributes{{Name: "class", Value: `a"b`}}, HTML("<b>ok</b>"))
	want := HTML(`<div class="a&#34;b"><b>ok</b></div>`)
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\n got: %s", want, got)
	}
}

func TestTagRendersVoidElement(t *testing.T) {
	if got := Tag("br", nil); got != "<br />" {
		t.Fatalf("expected <br />, got %q", got)
	}
}

func TestSafeJoinEscapesPartsOnly(t *testing.T) {
	got := SafeJoin([]string{"a < b", "c & d"}, Tag("br", nil))
	want := HTML("a &lt; b<br />c &amp; d")
	if got != want {
		t.Fatalf("unexpected join\nwant: %s\n got: %s", want, got)
	}
}

func TestJoinHTMLSkipsEmptyFragments(t *testing.T) {
	got := JoinHTML([]HTML{"<label></label>", "", "<input />"}, "\n")
	if got != "<label></label>\n<input />" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestAttributesFromMapSortsAndStringifies(t *testing.T) {
	got := AttributesFromMap(map[string]any{
		"data-x":    "y",
		"autofocus": true,
		"disabled":  false,
		"size":      12,
		"step":      0.5,
		"skip":      nil,
	})
	want := Attributes{
		{Name: "autofocus", Value: "autofocus"},
		{Name: "data-x", Value: "y"},
		{Name: "size", Value: "12"},
		{Name: "step", Value: "0.5"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesWithout(t *testing.T) {
	attrs := Attributes{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	got := attrs.Without("a")
	if diff := cmp.Diff(Attributes{{Name: "b", Value: "2"}}, got); diff != "" {
		t.Fatalf("unexpected attributes (-want +got):\n%s", diff)
	}
	if _, ok := attrs.Get("a"); !ok {
		t.Fatalf("expected original attributes untouched")
	}
}

func TestClassListDropsBlanksAndDuplicates(t *testing.T) {
	if got := ClassList("email", "", "error", "email "); got != "email error" {
		t.Fatalf("unexpected class list %q", got)
	}
}

func TestSanitizeKeepsInlineFormatting(t *testing.T) {
	got := Sanitize(`<strong>Name</strong><script>alert(1)</script>`)
	if got != "<strong>Name</strong>" {
		t.Fatalf("unexpected sanitized markup %q", got)
	}
	if Sanitize("   ") != "" {
		t.Fatalf("expected blank input to sanitize to empty")
	}
}
