package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/parse/sii"
	"github.com/dzjyyds666/siq/pkg"
)

// loadDocument 读取并解析输入文件
func loadDocument(path string) (*sii.Document, error) {
	text, err := pkg.ReadInput(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoding input", "path", path, "bytes", len(text))
	return sii.Decode(text, decodeOptions()...), nil
}

func decodeOptions() []sii.DecodeOption {
	opts := []sii.DecodeOption{sii.WithLogger(logger)}
	if config.MaxArrayIndex > 0 {
		opts = append(opts, sii.MaxArrayIndex(config.MaxArrayIndex))
	}
	return opts
}

// withOutput 打开输出并在 fn 返回后关闭
func withOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) error {
	w, err := pkg.CreateOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
