package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"screen-qna/ocr"
	"screen-qna/screenshot"
	"screen-qna/watcher"
)

var (
	watchInterval int
	watchModel    string
	watchOnce     bool
	watchRegion   []int
	watchLangs    string
	watchPSM      int
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously scan the screen and answer new questions",
	Long: `Capture the full screen (or a fixed region) at an interval, detect
question sentences in the recognized text, and print an answer for each one
the first time it is seen. Questions that stay on screen are not re-asked.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 10, "seconds between consecutive captures (minimum 1)")
	watchCmd.Flags().StringVar(&watchModel, "model", "", "model name (default from MODEL env)")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "capture only once and exit")
	watchCmd.Flags().IntSliceVar(&watchRegion, "region", nil, "screen region to capture as X,Y,W,H instead of full screen")
	watchCmd.Flags().StringVar(&watchLangs, "lang", "", "OCR language(s), e.g. ara or eng+ara (default from OCR_LANGS env)")
	watchCmd.Flags().IntVar(&watchPSM, "psm", ocr.DefaultPSM, "OCR page segmentation mode")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient(watchModel)
	if err != nil {
		return err
	}

	var reg *screenshot.Region
	if len(watchRegion) > 0 {
		if len(watchRegion) != 4 {
			return fmt.Errorf("--region expects four integers: X,Y,W,H")
		}
		reg = &screenshot.Region{
			X:      watchRegion[0],
			Y:      watchRegion[1],
			Width:  watchRegion[2],
			Height: watchRegion[3],
		}
	}

	if watchInterval < 1 {
		watchInterval = 1
	}
	langs := watchLangs
	if langs == "" {
		langs = cfg.Langs
	}

	w := watcher.New(watcher.Config{
		Interval: time.Duration(watchInterval) * time.Second,
		Once:     watchOnce,
		Region:   reg,
		Langs:    langs,
		PSM:      watchPSM,
	}, client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nExiting...")
			return nil
		}
		return err
	}
	return nil
}
