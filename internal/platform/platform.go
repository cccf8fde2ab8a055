// Package platform declares the interfaces the core consumes from its
// external collaborators (spec.md §6): font measurement, resource
// loading, and image decoding. None of these are implemented here --
// the raster backend, network layer, and font loader are explicitly
// out of scope (spec.md §1) -- but the core's layout and selection
// packages are written entirely against these interfaces so a real
// platform can be substituted without touching the pipeline.
package platform

import "github.com/quillweb/quill/internal/urlparse"

// Font names the text properties the layout computer measures against.
// It carries no rasterization state; only the font context collaborator
// knows how to turn this into glyph metrics.
type Font struct {
	Family string
	SizePx float64
	Bold   bool
}

// FontContext is the text-measurement collaborator spec.md §6 names:
// "font_context.get_text_dimension", "font_context.
// compute_char_position_mapping".
type FontContext interface {
	// TextDimension returns the rendered (width, height) in pixels of
	// text set in font, with no wrapping applied.
	TextDimension(text string, font Font) (width, height float64)

	// CharPositionMapping returns, for each rune in text, the x-advance
	// from the start of text to the end of that rune -- used by the
	// selection engine (to map a pixel x back to a character index).
	CharPositionMapping(text string, font Font) []float64
}

// JobID identifies one outstanding resource-loading job (spec.md §5).
type JobID int

// JobHandle is returned by ResourceLoader.Schedule*; the event loop
// polls it (or an equivalent channel) between frames, per spec.md §5.
type JobHandle struct {
	ID  JobID
	URL *urlparse.URL
}

// TextResult is what a text-loading job resolves to.
type TextResult struct {
	Job  JobHandle
	Text string
	Err  error
}

// ImageResult is what an image-loading job resolves to: either decoded
// pixel dimensions (the core never touches raw pixels itself) or an
// error, in which case the DOM node falls back to a 1x1 transparent
// image per spec.md §7.
type ImageResult struct {
	Job           JobHandle
	Width, Height int
	Err           error
}

// ResourceLoader dispatches network/filesystem fetches to a worker
// pool outside the core (spec.md §5: "Parallel work lives outside the
// core"). The core never blocks on these calls; it only receives
// results back through whatever channel the platform wires up and
// applies them to the DOM on the event-loop thread.
type ResourceLoader interface {
	ScheduleLoadText(url *urlparse.URL) JobHandle
	ScheduleLoadImage(url *urlparse.URL) JobHandle
}

// ImageDecoder turns fetched bytes into pixel dimensions. Decoding
// failures are not fatal (spec.md §7): the caller substitutes a
// fallback image and continues layout.
type ImageDecoder func(data []byte) (width, height int, err error)
