package cli

import (
	"github.com/spf13/cobra"

	"screen-qna/gui"
	"screen-qna/ocr"
)

var (
	guiLangs string
	guiModel string
	guiPSM   int
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Windowed variant with a Select & Answer button",
	RunE:  runGui,
}

func init() {
	guiCmd.Flags().StringVar(&guiLangs, "lang", "", "OCR language(s), e.g. ara or eng+ara (default from OCR_LANGS env)")
	guiCmd.Flags().StringVar(&guiModel, "model", "", "model name (default from MODEL env)")
	guiCmd.Flags().IntVar(&guiPSM, "psm", ocr.DefaultPSM, "OCR page segmentation mode")
	rootCmd.AddCommand(guiCmd)
}

func runGui(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient(guiModel)
	if err != nil {
		return err
	}

	langs := guiLangs
	if langs == "" {
		langs = cfg.Langs
	}

	return gui.New(gui.Config{Langs: langs, PSM: guiPSM}, client).Run()
}
