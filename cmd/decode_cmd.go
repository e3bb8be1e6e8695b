package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/pkg"
)

type DecodeParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Format string `json:"format"` // yaml 或 json
}

var decodeParams = &DecodeParams{}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Print a sii document as yaml or json",
	Long: `Print a sii document as yaml or json, keeping field order.

Sections carry their type under __type. Each array is preceded by
<key>__count holding its count header.`,
	RunE:  decodeRun,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeParams.Input, "input", "i", "", "input file path")
	decodeCmd.Flags().StringVarP(&decodeParams.Output, "output", "o", "", "output path")
	decodeCmd.Flags().StringVarP(&decodeParams.Format, "format", "f", "", "yaml or json")
}

func decodeRun(cmd *cobra.Command, args []string) error {
	format := decodeParams.Format
	if len(format) == 0 {
		format = config.Format
	}
	ef, err := pkg.ParseExportFormat(format)
	if err != nil {
		return err
	}
	doc, err := loadDocument(decodeParams.Input)
	if err != nil {
		return err
	}
	return withOutput(cmd, decodeParams.Output, func(w io.Writer) error {
		return pkg.Export(w, doc, ef)
	})
}
