package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/parse/sii"
	"github.com/dzjyyds666/siq/pkg"
)

type FindParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Type   string `json:"type"`   // 查找的 section 类型
	Where  string `json:"where"`  // 过滤表达式
	First  bool   `json:"first"`  // 只输出第一个
	Body   bool   `json:"body"`   // 同时输出 section 内容
}

var findParams = &FindParams{}

var errNoMatch = errors.New("no matching section")

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find sections by type",
	Long: `Find sections by type tag, depth first in document order.

Each match prints as <path><TAB><type>. --where takes an expression over the
section's fields plus __type, __name and __path, for example:

  siq find -i game.sii -t job_offer_data --where 'urgency > 0'`,
	RunE: findRun,
}

func init() {
	findCmd.Flags().StringVarP(&findParams.Input, "input", "i", "", "input file path")
	findCmd.Flags().StringVarP(&findParams.Output, "output", "o", "", "output path")
	findCmd.Flags().StringVarP(&findParams.Type, "type", "t", "", "section type tag")
	findCmd.Flags().StringVarP(&findParams.Where, "where", "w", "", "filter expression")
	findCmd.Flags().BoolVar(&findParams.First, "first", false, "stop at the first match")
	findCmd.Flags().BoolVarP(&findParams.Body, "body", "b", false, "print the matched sections")
	findCmd.MarkFlagRequired("type")
}

func findRun(cmd *cobra.Command, args []string) error {
	var filter *pkg.Filter
	if len(findParams.Where) > 0 {
		f, err := pkg.CompileFilter(findParams.Where)
		if err != nil {
			return err
		}
		filter = f
	}
	doc, err := loadDocument(findParams.Input)
	if err != nil {
		return err
	}
	var ms []sii.Match
	if findParams.First && filter == nil {
		if m, ok := sii.FindFirst(doc, findParams.Type); ok {
			ms = append(ms, m)
		}
	} else {
		ms, err = pkg.Select(sii.FindAll(doc, findParams.Type), filter)
		if err != nil {
			return err
		}
	}
	if len(ms) == 0 {
		return fmt.Errorf("%w: type %q", errNoMatch, findParams.Type)
	}
	if findParams.First {
		ms = ms[:1]
	}
	if filter != nil {
		logger.Info("found sections", "type", findParams.Type, "where", filter.String(), "count", len(ms))
	} else {
		logger.Info("found sections", "type", findParams.Type, "count", len(ms))
	}
	return withOutput(cmd, findParams.Output, func(w io.Writer) error {
		if findParams.Body {
			return sii.NewEncoder(w).Encode(matchesDocument(doc, ms))
		}
		for _, m := range ms {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", m.Path, m.Section.TypeTag()); err != nil {
				return err
			}
		}
		return nil
	})
}

// matchesDocument 按路径重建匹配到的 section, 祖先只保留类型和名字
func matchesDocument(doc *sii.Document, ms []sii.Match) *sii.Document {
	out := sii.NewDocument()
	for _, m := range ms {
		var cur sii.Container = out
		for i, key := range m.Path.Parent() {
			n, _ := cur.Items().Get(key)
			s, ok := n.(*sii.Section)
			if !ok {
				orig, _ := sii.Lookup(doc, m.Path[:i+1])
				tag := ""
				if o, ok := orig.(*sii.Section); ok {
					tag = o.TypeTag()
				}
				s = sii.NewSection(tag)
				cur.Items().Set(key, s)
			}
			cur = s
		}
		// 已经随外层匹配一起输出
		if _, ok := cur.Items().Get(m.Key); ok {
			continue
		}
		cur.Items().Set(m.Key, m.Section)
	}
	return out
}
