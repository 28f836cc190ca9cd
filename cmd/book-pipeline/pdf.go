// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/book-pipeline/internal/config"
	"github.com/pdiddy/book-pipeline/internal/pdf"
	"github.com/pdiddy/book-pipeline/internal/process"
	"github.com/pdiddy/book-pipeline/internal/report"
	"github.com/pdiddy/book-pipeline/pkg/types"
)

// pdfStageName is the key of the pdf stage under "stages:" in the config file.
const pdfStageName = "pdf"

// newTool builds the external tool for the pdf stage. Tests replace it.
var newTool = process.NewTool

// diagnostics is where stage reporters write.
var diagnostics io.Writer = os.Stderr

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Typeset rendered HTML into a PDF with prince-books",
	Long: `Pdf reads build/<type>/index.html from the working directory and runs
prince-books to write build/<type>/book.pdf. The build type comes from the
manuscript file, --build-type, or defaults to "pdf".

Tool options come from the config file, in file order:

  stages:
    pdf:
      config:
        media: A4
        landscape: true

and from repeated --option key=value flags, appended after the file options.
Each option reaches prince-books as --key=value.`,
	Args: cobra.NoArgs,
	RunE: runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	m, err := manuscriptFromFlags(cmd)
	if err != nil {
		return err
	}

	sc, err := stageConfigFromFlags(cmd, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	workDir, _ := cmd.Flags().GetString("work-dir")
	rep := report.NewConsole(diagnostics, !viper.GetBool("no_color"))
	stage := pdf.NewStage(newTool(viper.GetString("pdf.binary")), rep, workDir)

	_, err = stage.Run(m, types.StageContext{
		StageConfig:  sc,
		GlobalConfig: config.LoadGlobalConfig(viper.AllSettings()),
	})
	return err
}

// manuscriptFromFlags loads --manuscript when given and applies an explicit
// --build-type (or BOOK_PIPELINE_BUILD_TYPE) on top.
func manuscriptFromFlags(cmd *cobra.Command) (*types.Manuscript, error) {
	m := &types.Manuscript{}
	if path, _ := cmd.Flags().GetString("manuscript"); path != "" {
		loaded, err := config.LoadManuscript(path)
		if err != nil {
			return nil, err
		}
		m = loaded
	}
	if bt := viper.GetString("build_type"); bt != "" {
		m.BuildType = bt
	}
	return m, nil
}

// stageConfigFromFlags collects the pdf stage options from the config file
// at cfgPath (when set) followed by each --option flag. It returns nil when
// neither supplies any.
func stageConfigFromFlags(cmd *cobra.Command, cfgPath string) (*types.StageConfig, error) {
	var sc *types.StageConfig
	if cfgPath != "" {
		loaded, err := config.LoadStageConfig(cfgPath, pdfStageName)
		if err != nil {
			return nil, err
		}
		sc = loaded
	}

	raw, _ := cmd.Flags().GetStringArray("option")
	if len(raw) == 0 {
		return sc, nil
	}
	if sc == nil {
		sc = &types.StageConfig{}
	}
	for _, s := range raw {
		opt, err := config.ParseOption(s)
		if err != nil {
			return nil, err
		}
		sc.Config.Add(opt.Key, opt.Value)
	}
	return sc, nil
}

func addPDFFlags(cmd *cobra.Command) {
	cmd.Flags().String("build-type", "", "build type selecting build/<type>/ (default \"pdf\")")
	cmd.Flags().String("manuscript", "", "manuscript descriptor YAML file")
	cmd.Flags().StringArrayP("option", "O", nil, "prince-books option as key=value (repeatable)")
	cmd.Flags().String("work-dir", "", "directory containing build/ (default: current directory)")
	cmd.Flags().String("binary", pdf.DefaultBinary, "PDF tool executable")
}

func init() {
	addPDFFlags(pdfCmd)
	_ = viper.BindPFlag("build_type", pdfCmd.Flags().Lookup("build-type"))
	_ = viper.BindPFlag("pdf.binary", pdfCmd.Flags().Lookup("binary"))

	rootCmd.AddCommand(pdfCmd)
}
