package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quillweb/quill/internal/test_utils"
	"github.com/quillweb/quill/internal/urlparse"
)

// TestPrintBoxTree checks that the printed box tree names the html,
// body and p elements; it does not check the tree's indentation.
func TestPrintBoxTree(t *testing.T) {
	src := `<html><body><p>hi</p></body></html>`
	res, err := runPipeline(src, "", 800)
	if err != nil {
		t.Fatalf("runPipeline: %v", err)
	}

	var buf bytes.Buffer
	printBoxTree(&buf, res, res.RootID, 0)
	got := buf.String()

	for _, want := range []string{"html", "body", "p"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("printBoxTree output missing %q, got:\n%s", want, got)
		}
	}
}

// TestResolveHrefAgainstDedentedFixture exercises resolveHref with a
// base URL read from a deliberately indented fixture string, the way
// the teacher's printer tests normalize hand-indented source fixtures
// with test_utils.Dedent before comparing.
func TestResolveHrefAgainstDedentedFixture(t *testing.T) {
	fixture := strings.TrimSpace(test_utils.Dedent(`
        https://example.com/section/page.html
    `))
	base, ok := urlparse.From(fixture)
	if !ok {
		t.Fatalf("could not parse base fixture %q", fixture)
	}

	got := resolveHref("../other.html", base)
	want := "https://example.com/other.html"

	if diff := test_utils.ANSIDiff(want, got); diff != "" {
		t.Errorf("resolveHref mismatch (-want +got):\n%s", diff)
	}
}
