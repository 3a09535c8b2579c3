// Package watcher is the continuous polling orchestrator: capture the screen
// (or a fixed region) at an interval, extract new questions, and answer them.
package watcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"screen-qna/cache"
	"screen-qna/llm"
	"screen-qna/ocr"
	"screen-qna/question"
	"screen-qna/screenshot"
)

type Config struct {
	Interval time.Duration      // minimum 1s is enforced
	Once     bool               // single cycle, then return
	Region   *screenshot.Region // nil captures the full screen
	Langs    string
	PSM      int
}

type Watcher struct {
	cfg  Config
	seen *cache.SeenSet
	out  io.Writer

	// pipeline stages, swappable in tests
	capture   func(*screenshot.Region) ([]byte, error)
	recognize func(imageData []byte, langs string, psm int) (string, error)
	ask       func(ctx context.Context, q string) (string, error)
}

// New builds a watcher around client. The seen-question cache starts empty
// for every new watcher; nothing is persisted across runs.
func New(cfg Config, client *llm.Client) *Watcher {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Second
	}
	if cfg.Langs == "" {
		cfg.Langs = "eng+ara"
	}
	if cfg.PSM == 0 {
		cfg.PSM = ocr.DefaultPSM
	}
	return &Watcher{
		cfg:       cfg,
		seen:      cache.NewSeenSet(),
		out:       os.Stdout,
		capture:   screenshot.Capture,
		recognize: ocr.Recognize,
		ask:       client.Ask,
	}
}

// Run loops until ctx is cancelled, or returns after one cycle when Once.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		w.cycle(ctx)
		if w.cfg.Once {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.cfg.Interval):
		}
	}
}

// cycle runs one capture->recognize->extract->answer pass. Failures are
// isolated: a capture failure abandons the cycle, a per-question failure
// abandons only that question and leaves it eligible for retry.
func (w *Watcher) cycle(ctx context.Context) {
	imageData, err := w.capture(w.cfg.Region)
	if err != nil {
		fmt.Fprintf(w.out, "Capture failed: %v\n", err)
		return
	}

	text, err := w.recognize(imageData, w.cfg.Langs, w.cfg.PSM)
	if err != nil {
		// Recognition failure means no questions this cycle, nothing more.
		log.Printf("Recognition failed, treating as empty text: %v", err)
		return
	}

	for _, q := range question.ExtractAll(text) {
		if w.seen.Has(q) {
			continue
		}
		fmt.Fprintf(w.out, "\n[Q] Question detected: %s\n\n", q)
		reply, err := w.ask(ctx, q)
		if err != nil {
			fmt.Fprintf(w.out, "Error while querying answer service: %v\n\n", err)
			continue
		}
		fmt.Fprintf(w.out, "[A] Answer:\n%s\n\n", reply)
		w.seen.Add(q)
	}
}
