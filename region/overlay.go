package region

import (
	"context"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"screen-qna/screenshot"
)

type outcome struct {
	rect      Rect
	cancelled bool
}

// Select shows a borderless overlay sized to the virtual desktop and blocks
// until the user completes a drag (normalized Rect, cancelled=false) or
// presses Esc (cancelled=true). Must be called off the fyne UI goroutine.
//
// Known limitation: fyne cannot place windows at negative virtual-desktop
// origins, so absolute coordinates assume the primary display at (0,0).
func Select(ctx context.Context) (Rect, bool, error) {
	bounds, err := screenshot.VirtualBounds()
	if err != nil {
		return Rect{}, false, err
	}

	drv, ok := fyne.CurrentApp().Driver().(desktop.Driver)
	if !ok {
		return Rect{}, false, fmt.Errorf("region selection requires a desktop driver")
	}

	done := make(chan outcome, 1)
	var win fyne.Window

	fyne.DoAndWait(func() {
		win = drv.CreateSplashWindow()
		ov := newOverlay(func(o outcome) {
			select {
			case done <- o:
			default:
			}
			win.Close()
		})
		win.SetPadded(false)
		win.SetContent(ov)
		win.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
		win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
			if ev.Name == fyne.KeyEscape {
				ov.cancel()
			}
		})
		win.Show()
		ov.scale = win.Canvas().Scale()
	})

	select {
	case o := <-done:
		if o.cancelled {
			return Rect{}, true, nil
		}
		return o.rect, false, nil
	case <-ctx.Done():
		fyne.Do(func() { win.Close() })
		return Rect{}, false, ctx.Err()
	}
}

// overlay is the drag surface: a translucent veil with a live red rectangle.
type overlay struct {
	widget.BaseWidget
	machine *Machine
	box     *canvas.Rectangle
	scale   float32
	done    func(outcome)
}

var _ desktop.Mouseable = (*overlay)(nil)
var _ desktop.Hoverable = (*overlay)(nil)
var _ desktop.Cursorable = (*overlay)(nil)

func newOverlay(done func(outcome)) *overlay {
	o := &overlay{
		machine: NewMachine(),
		box:     canvas.NewRectangle(color.Transparent),
		done:    done,
	}
	o.box.StrokeColor = color.NRGBA{R: 0xff, A: 0xff}
	o.box.StrokeWidth = 2
	o.box.Hide()
	o.ExtendBaseWidget(o)
	return o
}

func (o *overlay) Cursor() desktop.Cursor { return desktop.CrosshairCursor }

func (o *overlay) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	o.machine.Press(o.px(ev.AbsolutePosition.X), o.px(ev.AbsolutePosition.Y))
	if o.machine.State() == StateDragging {
		o.box.Show()
		o.redraw()
	}
}

func (o *overlay) MouseUp(ev *desktop.MouseEvent) {
	if o.machine.State() != StateDragging {
		return
	}
	o.machine.Release(o.px(ev.AbsolutePosition.X), o.px(ev.AbsolutePosition.Y))
	if rect, ok := o.machine.Result(); ok {
		o.done(outcome{rect: rect})
	}
}

func (o *overlay) MouseMoved(ev *desktop.MouseEvent) {
	if o.machine.State() != StateDragging {
		return
	}
	o.machine.Move(o.px(ev.AbsolutePosition.X), o.px(ev.AbsolutePosition.Y))
	o.redraw()
}

func (o *overlay) MouseIn(*desktop.MouseEvent) {}
func (o *overlay) MouseOut()                   {}

func (o *overlay) cancel() {
	st := o.machine.State()
	if st == StateCompleted || st == StateCancelled {
		return
	}
	o.machine.Cancel()
	o.done(outcome{cancelled: true})
}

func (o *overlay) redraw() {
	r := o.machine.Live()
	o.box.Move(fyne.NewPos(o.dip(r.X1), o.dip(r.Y1)))
	o.box.Resize(fyne.NewSize(o.dip(r.X2-r.X1), o.dip(r.Y2-r.Y1)))
	o.box.Refresh()
}

// px converts a device-independent coordinate to screen pixels.
func (o *overlay) px(v float32) int {
	if o.scale <= 0 {
		return int(v)
	}
	return int(v * o.scale)
}

// dip converts screen pixels back to device-independent units for drawing.
func (o *overlay) dip(v int) float32 {
	if o.scale <= 0 {
		return float32(v)
	}
	return float32(v) / o.scale
}

func (o *overlay) CreateRenderer() fyne.WidgetRenderer {
	veil := canvas.NewRectangle(color.NRGBA{A: 0x4d})
	return &overlayRenderer{o: o, veil: veil}
}

type overlayRenderer struct {
	o    *overlay
	veil *canvas.Rectangle
}

func (r *overlayRenderer) Layout(size fyne.Size) { r.veil.Resize(size) }
func (r *overlayRenderer) MinSize() fyne.Size    { return fyne.NewSize(1, 1) }
func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.veil, r.o.box}
}
func (r *overlayRenderer) Refresh() {
	r.veil.Refresh()
	r.o.box.Refresh()
}
func (r *overlayRenderer) Destroy() {}
