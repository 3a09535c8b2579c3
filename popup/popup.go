// Package popup shows modal information and error dialogs.
package popup

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Info shows an information dialog attached to win. Safe to call from any
// goroutine; the dialog is marshalled onto the UI loop.
func Info(win fyne.Window, title, text string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, text, win)
	})
}

// Error shows an error dialog attached to win.
func Error(win fyne.Window, err error) {
	fyne.Do(func() {
		dialog.ShowError(err, win)
	})
}

// Show displays a standalone information dialog in its own small window,
// for flows that have no main window (the snap session's --popup mode).
func Show(a fyne.App, title, text string) {
	fyne.Do(func() {
		w := a.NewWindow(title)
		w.Resize(fyne.NewSize(360, 140))
		d := dialog.NewInformation(title, text, w)
		d.SetOnClosed(w.Close)
		w.Show()
		d.Show()
	})
}

// ShowError displays a standalone error dialog in its own small window.
func ShowError(a fyne.App, err error) {
	fyne.Do(func() {
		w := a.NewWindow("Error")
		w.Resize(fyne.NewSize(360, 140))
		d := dialog.NewError(err, w)
		d.SetOnClosed(w.Close)
		w.Show()
		d.Show()
	})
}
