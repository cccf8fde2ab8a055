package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/layout"
)

var (
	renderWidth float64
	renderURL   string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Parse, style, and lay out an HTML document, printing its box tree",
	Long:  `render runs the full pipeline (HTML lexer/parser -> cascade resolver -> layout builder/computer) and prints the resulting layout tree as indented boxes, one line per node. Reads from stdin if no file is given or "-" is passed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		src, err := readSource(path)
		if err != nil {
			return err
		}
		res, err := runPipeline(src, renderURL, renderWidth)
		if err != nil {
			return err
		}

		printDiagnostics(os.Stderr, res.Handler)
		printBoxTree(os.Stdout, res, res.RootID, 0)
		return nil
	},
}

func init() {
	renderCmd.Flags().Float64VarP(&renderWidth, "width", "w", 800, "available width in pixels for the root block")
	renderCmd.Flags().StringVarP(&renderURL, "url", "u", "", "starting URL, used to resolve relative hyperlinks (spec.md §4.1)")
}

func printBoxTree(w io.Writer, res *pipelineResult, id layout.NodeID, depth int) {
	n := res.Tree.Node(id)
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	b := n.Box
	label := n.Kind.String()
	if n.DOMNode != 0 {
		if domNode := res.Doc.Node(n.DOMNode); domNode != nil && domNode.Type == dom.ElementNode {
			label = domNode.Name
			if domNode.Name == "a" {
				if href, ok := domNode.Attr("href"); ok {
					if resolved := resolveHref(href, res.Base); resolved != "" {
						label += fmt.Sprintf(" -> %s", resolved)
					}
				}
			}
		}
	}
	fmt.Fprintf(w, "%s%s [%.0f,%.0f %.0fx%.0f]", indent, label, b.X, b.Y, b.W, b.H)
	if n.Kind == layout.TextContent && len(n.TextBoxes) > 0 {
		fmt.Fprintf(w, " %q", n.TextBoxes[0].Text)
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		printBoxTree(w, res, c, depth+1)
	}
}
