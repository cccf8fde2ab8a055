package cmd

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/spf13/cobra"

	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/layout"
)

var dumpURL string

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Serialize the computed layout tree to JSON",
	Long:  `dump runs the same pipeline as render but prints a JSON document describing every layout node's kind, DOM tag (if any), and computed box, for scripting or golden-file comparisons (see the "diff" subcommand).`,
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
		res, err := runPipeline(src, dumpURL, renderWidth)
		if err != nil {
			return err
		}
		printDiagnostics(os.Stderr, res.Handler)

		tree := dumpTree(res, res.RootID)
		out, err := json.Marshal(tree)
		if err != nil {
			return fmt.Errorf("marshal layout dump: %w", err)
		}
		_, err = os.Stdout.Write(append(out, '\n'))
		return err
	},
}

func init() {
	dumpCmd.Flags().Float64VarP(&renderWidth, "width", "w", 800, "available width in pixels for the root block")
	dumpCmd.Flags().StringVarP(&dumpURL, "url", "u", "", "starting URL, used to resolve relative hyperlinks")
}

// DumpNode is the JSON-serializable projection of a layout.Node used
// by the "dump" and "diff" subcommands -- a plain tree (not an
// id-keyed arena) so two documents' dumps can be textually diffed
// without their internal NodeID numbering lining up.
type DumpNode struct {
	Kind     string     `json:"kind"`
	Tag      string     `json:"tag,omitempty"`
	Text     string     `json:"text,omitempty"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	W        float64    `json:"w"`
	H        float64    `json:"h"`
	Children []DumpNode `json:"children,omitempty"`
}

func dumpTree(res *pipelineResult, id layout.NodeID) DumpNode {
	n := res.Tree.Node(id)
	if n == nil {
		return DumpNode{}
	}
	out := DumpNode{
		Kind: n.Kind.String(),
		X:    n.Box.X, Y: n.Box.Y, W: n.Box.W, H: n.Box.H,
	}
	if n.DOMNode != 0 {
		if domNode := res.Doc.Node(n.DOMNode); domNode != nil && domNode.Type == dom.ElementNode {
			out.Tag = domNode.Name
		}
	}
	if n.Kind == layout.TextContent && len(n.TextBoxes) > 0 {
		out.Text = n.TextBoxes[0].Text
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, dumpTree(res, c))
	}
	return out
}
