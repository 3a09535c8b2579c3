package cli

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"screen-qna/clipboard"
	"screen-qna/ocr"
	"screen-qna/popup"
	"screen-qna/session"
)

var (
	snapLangs    string
	snapModel    string
	snapPSM      int
	snapShowText bool
	snapPopup    bool
)

var snapCmd = &cobra.Command{
	Use:   "snap",
	Short: "Drag a rectangle around a question and answer it",
	Long: `The screen darkens; drag a rectangle around the question and release
to answer it. Esc cancels. After each answer you can retake or exit.`,
	RunE: runSnap,
}

func init() {
	snapCmd.Flags().StringVar(&snapLangs, "lang", "", "OCR language(s), e.g. ara or eng+ara (default from OCR_LANGS env)")
	snapCmd.Flags().StringVar(&snapModel, "model", "", "model name (default from MODEL env)")
	snapCmd.Flags().IntVar(&snapPSM, "psm", ocr.DefaultPSM, "OCR page segmentation mode")
	snapCmd.Flags().BoolVar(&snapShowText, "show-text", false, "also print detected OCR text")
	snapCmd.Flags().BoolVar(&snapPopup, "popup", false, "show answers in a pop-up dialog")
	rootCmd.AddCommand(snapCmd)
}

func runSnap(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient(snapModel)
	if err != nil {
		return err
	}

	langs := snapLangs
	if langs == "" {
		langs = cfg.Langs
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	}

	// The selection overlay (and optional dialogs) need a fyne app whose
	// loop owns the main goroutine; the session drives it from a worker.
	a := fyneapp.New()
	// Keeper window, never shown: the app loop must outlive each overlay
	// window the session opens and closes.
	_ = a.NewWindow("ScreenQnA")
	s := session.New(session.Config{
		Langs:    langs,
		PSM:      snapPSM,
		ShowText: snapShowText,
		Popup:    snapPopup,
	}, client)
	if snapPopup {
		s.SetDialogs(
			func(title, text string) { popup.Show(a, title, text) },
			func(err error) { popup.ShowError(a, err) },
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx)
		fyne.Do(a.Quit)
	}()

	a.Run()
	return <-errCh
}
