package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dzjyyds666/siq/pkg"
)

type RootParams struct {
	Config   string `json:"config"`    // 配置文件路径
	LogLevel string `json:"log_level"` // 日志级别
	Color    string `json:"color"`     // auto, always, never
}

var rootParams = &RootParams{}

// 运行时的配置, 由 PersistentPreRunE 填充
var (
	config *pkg.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "siq",
	Short: "Siq is a tool for SII text documents.",
	Long:  "Siq decodes, formats, searches and checks SII text documents such as game.sii saves and def files.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "siq:", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Siq",
	Long:  `All software has versions. This is Siq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Siq v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootParams.Config, "config", "c", "", "yaml config file")
	rootCmd.PersistentFlags().StringVar(&rootParams.LogLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&rootParams.Color, "color", "", "auto, always or never")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(checkCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := pkg.LoadConfig(rootParams.Config)
	if err != nil {
		return err
	}
	if len(rootParams.LogLevel) > 0 {
		cfg.LogLevel = rootParams.LogLevel
	}
	if len(rootParams.Color) > 0 {
		cfg.Color = rootParams.Color
	}
	level, err := pkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	config = cfg
	logger = pkg.NewLogger(cmd.ErrOrStderr(), level)
	return nil
}
