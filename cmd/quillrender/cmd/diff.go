package cmd

import (
	"fmt"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/pkg/diff"
	"github.com/spf13/cobra"
)

var diffURL string

var diffCmd = &cobra.Command{
	Use:   "diff <file-a> <file-b>",
	Short: "Line-diff the layout dumps of two HTML documents",
	Long:  `diff renders both documents (same pipeline as "dump") and prints a unified line diff of their JSON layout dumps, useful for spotting unintended layout changes between two revisions of a page.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		aJSON, err := dumpFile(args[0])
		if err != nil {
			return err
		}
		bJSON, err := dumpFile(args[1])
		if err != nil {
			return err
		}
		return diff.Text(args[0], args[1], aJSON, bJSON, os.Stdout)
	},
}

func init() {
	diffCmd.Flags().StringVarP(&diffURL, "url", "u", "", "starting URL shared by both documents, used to resolve relative hyperlinks")
}

func dumpFile(path string) ([]byte, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	res, err := runPipeline(src, diffURL, renderWidth)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(dumpTree(res, res.RootID))
	if err != nil {
		return nil, fmt.Errorf("marshal layout dump for %s: %w", path, err)
	}
	return out, nil
}
