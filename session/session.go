// Package session is the interactive single-shot orchestrator: select a
// region, answer the question inside it, then ask the user whether to go
// again. Each pass is independent; there is no seen-question cache here.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"screen-qna/answer"
	"screen-qna/clipboard"
	"screen-qna/llm"
	"screen-qna/ocr"
	"screen-qna/question"
	"screen-qna/region"
	"screen-qna/screenshot"
)

type Config struct {
	Langs    string
	PSM      int
	ShowText bool // echo raw OCR text before answering
	Popup    bool // present answers/errors in modal dialogs too
}

type Session struct {
	cfg Config
	in  *bufio.Reader
	out io.Writer

	// pipeline stages and sinks, swappable in tests
	selectRegion func(ctx context.Context) (region.Rect, bool, error)
	capture      func(*screenshot.Region) ([]byte, error)
	recognize    func(imageData []byte, langs string, psm int) (string, error)
	ask          func(ctx context.Context, q string) (string, error)
	copyText     func(text string) error
	notify       func(title, text string)
	notifyErr    func(err error)
}

func New(cfg Config, client *llm.Client) *Session {
	if cfg.Langs == "" {
		cfg.Langs = "eng+ara"
	}
	if cfg.PSM == 0 {
		cfg.PSM = ocr.DefaultPSM
	}
	return &Session{
		cfg:          cfg,
		in:           bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		selectRegion: region.Select,
		capture:      screenshot.Capture,
		recognize:    ocr.Recognize,
		ask:          client.Ask,
		copyText:     clipboard.Write,
		notify:       func(string, string) {},
		notifyErr:    func(error) {},
	}
}

// SetDialogs wires the modal dialog sinks used when Popup is enabled.
func (s *Session) SetDialogs(notify func(title, text string), notifyErr func(err error)) {
	s.notify = notify
	s.notifyErr = notifyErr
}

// Run drives selection passes until the user cancels the overlay, declines
// the retake prompt, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		rect, cancelled, err := s.selectRegion(ctx)
		if err != nil {
			return fmt.Errorf("failed to select region: %w", err)
		}
		if cancelled {
			fmt.Fprintln(s.out, "Selection cancelled.")
			return nil
		}

		s.answerOnce(ctx, rect)

		again, err := s.confirmRetake()
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// answerOnce runs one capture->recognize->extract->ask->format pass.
// Failures are reported and end the pass, never the session.
func (s *Session) answerOnce(ctx context.Context, rect region.Rect) {
	reg := rect.ToRegion()
	imageData, err := s.capture(&reg)
	if err != nil {
		fmt.Fprintf(s.out, "Capture failed: %v\n", err)
		if s.cfg.Popup {
			s.notifyErr(err)
		}
		return
	}

	text, err := s.recognize(imageData, s.cfg.Langs, s.cfg.PSM)
	if err != nil {
		log.Printf("Recognition failed, treating as empty text: %v", err)
		text = ""
	}
	text = strings.TrimSpace(text)
	if text == "" {
		if s.cfg.Popup {
			s.notify("ScreenQnA", "No text detected in selection.")
		}
		fmt.Fprintln(s.out, "No text detected.")
		return
	}

	if s.cfg.ShowText {
		fmt.Fprintln(s.out, text)
	}

	q := question.ExtractFirst(text)
	reply, err := s.ask(ctx, q)
	if err != nil {
		if s.cfg.Popup {
			s.notifyErr(err)
		}
		fmt.Fprintln(s.out, "Error:", err)
		return
	}

	formatted := answer.Format(reply, text)
	fmt.Fprintln(s.out, ".....")
	fmt.Fprintln(s.out, formatted)
	if err := s.copyText(formatted); err != nil {
		log.Printf("Clipboard write failed: %v", err)
	}
	if s.cfg.Popup {
		s.notify("AI Answer", reply)
	}
}

func (s *Session) confirmRetake() (bool, error) {
	fmt.Fprint(s.out, "(1) Retake screenshot  (2) Exit: ")
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(line) == "1", nil
}
