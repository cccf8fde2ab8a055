package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/htmlparse"
	"github.com/quillweb/quill/internal/layout"
	"github.com/quillweb/quill/internal/loc"
	"github.com/quillweb/quill/internal/platform"
	"github.com/quillweb/quill/internal/urlparse"
)

// pipelineResult bundles every stage output a subcommand might report
// on: the parsed DOM/stylesheet, the built-and-computed layout tree,
// the resolved base URL, and whatever diagnostics were collected along
// the way (spec.md §7: never thrown, always collected).
type pipelineResult struct {
	Doc     *dom.Document
	Parse   htmlparse.Result
	Tree    *layout.Tree
	RootID  layout.NodeID
	Base    *urlparse.URL
	Handler *diag.Handler
}

// defaultFontContext stands in for the real font/glyph backend, which
// is explicitly out of scope for the core (spec.md §1's "Out of
// scope" paragraph names the font face binary loader and raster
// backend as external collaborators this module never implements).
// The CLI needs *some* FontContext to drive layout.Compute, so it uses
// the same FixedFontContext the test suite measures against -- a
// deterministic per-character advance, not a claim about real glyph
// metrics.
func defaultFontContext() platform.FontContext {
	return platform.NewFixedFontContext(8, 18)
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// runPipeline parses src (resolving startURL, if given, as the
// document origin spec.md §6 names for relative sub-resource
// resolution), then builds and computes a layout tree at width.
func runPipeline(src, startURL string, width float64) (*pipelineResult, error) {
	var base *urlparse.URL
	if startURL != "" {
		u, ok := urlparse.From(startURL)
		if !ok {
			return nil, fmt.Errorf("could not parse start URL %q", startURL)
		}
		base = u
	}

	h := diag.New()
	parsed := htmlparse.Parse(src, h)
	built := layout.Build(parsed.Doc, parsed.Style, parsed.Doc.RootID, h)
	layout.Compute(built.Tree, defaultFontContext(), built.Root, 0, 0, width, false, true)
	parsed.Doc.ClearDirty(parsed.Doc.RootID)

	return &pipelineResult{
		Doc:     parsed.Doc,
		Parse:   parsed,
		Tree:    built.Tree,
		RootID:  built.Root,
		Base:    base,
		Handler: h,
	}, nil
}

// printDiagnostics prints every collected diagnostic, colorized by
// severity the way the teacher's cc-switch CLI colorizes status lines
// (color.Yellow for warnings, color.Red for errors, color.Cyan for info).
func printDiagnostics(w io.Writer, h *diag.Handler) {
	for _, d := range h.Diagnostics() {
		line := d.String()
		switch d.Severity {
		case loc.Error:
			fmt.Fprintln(w, color.RedString(line))
		case loc.Warning:
			fmt.Fprintln(w, color.YellowString(line))
		default:
			fmt.Fprintln(w, color.CyanString(line))
		}
	}
}

// resolveHref resolves an <a>'s href attribute against base, per
// spec.md §4.1's navigation/hyperlink-resolution use of the URL
// resolver. Returns "" if href is absent or base is nil (no starting
// URL was given) and the href isn't itself absolute.
func resolveHref(href string, base *urlparse.URL) string {
	if href == "" {
		return ""
	}
	u, ok := urlparse.FromBaseURL(href, base)
	if !ok {
		return ""
	}
	if u.Scheme == "" {
		return ""
	}
	return u.String()
}
