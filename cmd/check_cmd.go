package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/pkg"
)

type CheckParams struct {
	Input string `json:"input"` // 输入文件路径
	Quiet bool   `json:"quiet"` // 只返回状态, 不打印差异
}

var checkParams = &CheckParams{}

var errRoundTrip = errors.New("document does not survive a round trip")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that a document survives decode and encode",
	Long:  "Decode and re-encode a document, then diff both line by line ignoring layout and comments.",
	RunE:  checkRun,
}

func init() {
	checkCmd.Flags().StringVarP(&checkParams.Input, "input", "i", "", "input file path")
	checkCmd.Flags().BoolVarP(&checkParams.Quiet, "quiet", "q", false, "do not print the diff")
}

func checkRun(cmd *cobra.Command, args []string) error {
	text, err := pkg.ReadInput(checkParams.Input)
	if err != nil {
		return err
	}
	rt := pkg.CheckRoundTrip(text, decodeOptions()...)
	if !rt.Changed() {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}
	changes := rt.Changes()
	logger.Warn("round trip changed the document", "input", checkParams.Input, "lines", len(changes))
	if !checkParams.Quiet {
		if err := printDiff(cmd, changes); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %d lines differ", errRoundTrip, len(changes))
}

func printDiff(cmd *cobra.Command, lines []pkg.DiffLine) error {
	w := cmd.OutOrStdout()
	colored, err := pkg.UseColor(config.Color, w)
	if err != nil {
		return err
	}
	paint := func(op pkg.DiffOp, s string) string { return s }
	if colored {
		color.NoColor = false
		red, green := color.New(color.FgRed), color.New(color.FgGreen)
		paint = func(op pkg.DiffOp, s string) string {
			if op == pkg.DiffDelete {
				return red.Sprint(s)
			}
			return green.Sprint(s)
		}
	}
	for _, l := range lines {
		if _, err := io.WriteString(w, paint(l.Op, string(l.Op)+" "+l.Text)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
