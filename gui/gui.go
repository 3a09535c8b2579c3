// Package gui is the windowed variant: a button (or Ctrl+S) starts region
// selection, the capture->recognize->ask->format pipeline runs on a
// background worker, and every presentation update is marshalled back onto
// the fyne UI loop. One operation is in flight at a time; the trigger is
// disabled for its duration.
package gui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"screen-qna/answer"
	"screen-qna/clipboard"
	"screen-qna/llm"
	"screen-qna/ocr"
	"screen-qna/popup"
	"screen-qna/question"
	"screen-qna/region"
	"screen-qna/screenshot"
	"screen-qna/worker"
)

const pipelineDeadline = 60 * time.Second

type Config struct {
	Langs string
	PSM   int
}

type App struct {
	cfg    Config
	client *llm.Client
	pool   *worker.Pool

	win    fyne.Window
	output *widget.Entry
	button *widget.Button
	busy   bool // touched only on the UI goroutine
}

func New(cfg Config, client *llm.Client) *App {
	if cfg.Langs == "" {
		cfg.Langs = "eng+ara"
	}
	if cfg.PSM == 0 {
		cfg.PSM = ocr.DefaultPSM
	}
	a := &App{cfg: cfg, client: client}
	a.pool = worker.New(1, a.pipeline)
	return a
}

// Run builds the window and blocks until it is closed.
func (a *App) Run() error {
	fapp := app.New()
	a.win = fapp.NewWindow("Screen QnA")
	a.win.Resize(fyne.NewSize(600, 400))

	a.output = widget.NewMultiLineEntry()
	a.output.Wrapping = fyne.TextWrapWord
	a.button = widget.NewButton("Select & Answer (Ctrl+S)", a.onSelectAndAnswer)
	a.win.SetContent(container.NewBorder(nil, a.button, nil, nil, a.output))

	ctrlS := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	a.win.Canvas().AddShortcut(ctrlS, func(fyne.Shortcut) { a.onSelectAndAnswer() })

	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	}

	defer a.pool.Close()
	a.win.ShowAndRun()
	return nil
}

// pipeline runs on a worker goroutine.
func (a *App) pipeline(ctx context.Context, rect region.Rect) (worker.Result, error) {
	reg := rect.ToRegion()
	imageData, err := screenshot.Capture(&reg)
	if err != nil {
		return worker.Result{}, err
	}
	text, err := ocr.Recognize(imageData, a.cfg.Langs, a.cfg.PSM)
	if err != nil {
		return worker.Result{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return worker.Result{}, fmt.Errorf("no text detected in selection")
	}
	q := question.ExtractFirst(text)
	reply, err := a.client.AskAccurate(ctx, q)
	if err != nil {
		return worker.Result{}, err
	}
	return worker.Result{
		Source:    text,
		Question:  q,
		Answer:    reply,
		Formatted: answer.Format(reply, text),
	}, nil
}

// onSelectAndAnswer runs on the UI goroutine (button tap or shortcut).
func (a *App) onSelectAndAnswer() {
	if a.busy {
		return
	}
	a.setBusy(true)
	a.output.SetText("Select a region, Esc to cancel...\n")
	// Hide the main window so it does not obstruct the overlay.
	a.win.Hide()
	go a.selectAndSubmit()
}

// selectAndSubmit runs off the UI goroutine.
func (a *App) selectAndSubmit() {
	rect, cancelled, err := region.Select(context.Background())
	fyne.Do(func() { a.win.Show() })
	if err != nil {
		a.fail(fmt.Errorf("failed to select region: %w", err))
		return
	}
	if cancelled {
		fyne.Do(func() {
			a.output.SetText("")
			a.setBusy(false)
		})
		return
	}

	fyne.Do(func() { a.output.SetText("Running OCR...\n") })

	jobCtx, cancel := context.WithTimeout(context.Background(), pipelineDeadline)
	submitted := a.pool.Submit(jobCtx, rect, func(res worker.Result, err error) {
		cancel()
		if err != nil {
			a.fail(err)
			return
		}
		a.present(res)
	})
	if !submitted {
		cancel()
		a.fail(fmt.Errorf("busy, please retry"))
	}
}

func (a *App) present(res worker.Result) {
	fyne.Do(func() {
		a.output.SetText(".....\n" + res.Formatted)
		if err := clipboard.Write(res.Formatted); err != nil {
			log.Printf("Clipboard write failed: %v", err)
		}
		a.setBusy(false)
	})
	popup.Info(a.win, "AI Answer", res.Answer)
}

func (a *App) fail(err error) {
	fyne.Do(func() { a.setBusy(false) })
	popup.Error(a.win, err)
}

func (a *App) setBusy(b bool) {
	a.busy = b
	if b {
		a.button.Disable()
	} else {
		a.button.Enable()
	}
}
