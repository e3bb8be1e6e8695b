package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/parse/sii"
	"github.com/dzjyyds666/siq/pkg"
)

type FmtParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var fmtParams = &FmtParams{}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite a sii document in canonical layout",
	Long:  "Decode a sii document and encode it again. Comments are dropped and indentation is regenerated.",
	RunE:  fmtRun,
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtParams.Input, "input", "i", "", "input file path")
	fmtCmd.Flags().StringVarP(&fmtParams.Output, "output", "o", "", "output path")
}

func fmtRun(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(fmtParams.Input)
	if err != nil {
		return err
	}
	return withOutput(cmd, fmtParams.Output, func(w io.Writer) error {
		var opts []sii.EncodeOption
		dst := w
		if len(fmtParams.Output) == 0 {
			dst = cmd.OutOrStdout()
		}
		colored, err := pkg.UseColor(config.Color, dst)
		if err != nil {
			return err
		}
		if colored {
			color.NoColor = false
			opts = append(opts, sii.EncodeColors(sii.NewColors()))
		}
		return sii.NewEncoder(w, opts...).Encode(doc)
	})
}
