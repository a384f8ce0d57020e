package viewer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"slideshow/internal/logger"
	"slideshow/internal/media"
	"slideshow/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// Controls is the slideshow surface driven by user actions.
type Controls interface {
	Next()
	Previous()
	TogglePause() bool
	IncreaseSpeed() time.Duration
	DecreaseSpeed() time.Duration
}

// Config defines viewer visuals.
type Config struct {
	Title      string
	Width      float32
	Height     float32
	Fullscreen bool
	// StatusTimeout is how long action feedback stays visible.
	StatusTimeout time.Duration
}

// Window shows one slideshow item at a time.
type Window struct {
	window     fyne.Window
	config     Config
	controls   Controls
	image      *canvas.Image
	errorLabel *canvas.Text
	statusText *canvas.Text
	background *canvas.Rectangle
	surface    *tapSurface
	engine     *animation.Engine
	load       func(string) (*media.Media, error)
	onQuit     func()

	statusMu    sync.Mutex
	statusTimer *time.Timer
	statusSeq   int

	itemMu  sync.Mutex
	itemSeq int
	loads   sync.WaitGroup
}

// New creates the viewer window. Closing it quits the application.
func New(app fyne.App, config Config, controls Controls) *Window {
	if config.Title == "" {
		config.Title = "Slideshow"
	}
	if config.Width <= 0 || config.Height <= 0 {
		config.Width, config.Height = 800, 600
	}
	if config.StatusTimeout <= 0 {
		config.StatusTimeout = 1500 * time.Millisecond
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetMaster()

	background := canvas.NewRectangle(color.Black)

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	errorLabel := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	errorLabel.Alignment = fyne.TextAlignCenter
	errorLabel.TextSize = 16
	errorLabel.Hide()

	statusText := canvas.NewText("", color.White)
	statusText.Alignment = fyne.TextAlignCenter
	statusText.TextStyle = fyne.TextStyle{Bold: true}
	statusText.TextSize = 18
	statusText.Hide()

	viewer := &Window{
		window:     window,
		config:     config,
		controls:   controls,
		image:      img,
		errorLabel: errorLabel,
		statusText: statusText,
		background: background,
		load:       media.Load,
	}
	viewer.surface = newTapSurface(func(pos fyne.Position, size fyne.Size) {
		viewer.Perform(ActionAt(pos, size))
	})
	viewer.engine = animation.New(animation.DefaultConfig(), viewer.setFrame)

	status := container.NewVBox(layout.NewSpacer(), statusText, layout.NewSpacer())
	root := container.NewStack(
		background,
		img,
		container.NewCenter(errorLabel),
		status,
		viewer.surface,
	)
	window.SetContent(root)
	window.Resize(fyne.NewSize(config.Width, config.Height))

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		viewer.Perform(ActionForKey(event.Name))
	})
	window.Canvas().SetOnTypedRune(func(r rune) {
		viewer.Perform(ActionForRune(r))
	})
	window.SetOnClosed(func() {
		viewer.engine.Stop()
	})

	return viewer
}

// SetOnQuit sets the quit handler used by the quit shortcut.
func (viewer *Window) SetOnQuit(handler func()) {
	viewer.onQuit = handler
}

// Show displays the window, centred, in the configured mode.
func (viewer *Window) Show() {
	viewer.window.CenterOnScreen()
	viewer.window.SetFullScreen(viewer.config.Fullscreen)
	viewer.window.Show()
	viewer.window.RequestFocus()
}

// ShowItem displays path. Decoding runs off the UI thread and a result is
// dropped if another item was requested meanwhile. Decode failures are shown
// in place of the image; they never stop the slideshow.
func (viewer *Window) ShowItem(path string) {
	viewer.window.SetTitle(fmt.Sprintf("%s - %s", viewer.config.Title, filepath.Base(path)))

	viewer.itemMu.Lock()
	viewer.itemSeq++
	seq := viewer.itemSeq
	viewer.itemMu.Unlock()

	viewer.loads.Add(1)
	go func() {
		defer viewer.loads.Done()
		item, err := viewer.load(path)
		fyne.DoAndWait(func() {
			if !viewer.currentItem(seq) {
				return
			}
			viewer.present(path, item, err)
		})
	}()
}

func (viewer *Window) currentItem(seq int) bool {
	viewer.itemMu.Lock()
	defer viewer.itemMu.Unlock()
	return seq == viewer.itemSeq
}

func (viewer *Window) present(path string, item *media.Media, err error) {
	log := logger.WithComponent("viewer")
	if err != nil {
		log.Warn().Err(err).Str("item", path).Msg("cannot display item")
		viewer.engine.Stop()
		viewer.image.Image = nil
		viewer.image.Refresh()
		viewer.errorLabel.Text = fmt.Sprintf("Cannot show %s", filepath.Base(path))
		viewer.errorLabel.Show()
		viewer.errorLabel.Refresh()
		return
	}

	size := item.Size()
	log.Debug().Str("item", path).Int("width", size.X).Int("height", size.Y).Int("frames", len(item.Frames)).Msg("decoded")
	viewer.errorLabel.Hide()
	viewer.engine.Play(context.Background(), item)
}

// Perform runs a user action against the controls.
func (viewer *Window) Perform(action Action) {
	if action == ActionNone {
		return
	}
	logger.WithComponent("viewer").Debug().Stringer("action", action).Msg("user action")

	switch action {
	case ActionNext:
		viewer.controls.Next()
	case ActionPrevious:
		viewer.controls.Previous()
	case ActionTogglePause:
		if viewer.controls.TogglePause() {
			viewer.SetStatus("paused")
		} else {
			viewer.SetStatus("playing")
		}
	case ActionFaster:
		viewer.SetStatus("faster · " + FormatInterval(viewer.controls.IncreaseSpeed()))
	case ActionSlower:
		viewer.SetStatus("slower · " + FormatInterval(viewer.controls.DecreaseSpeed()))
	case ActionFullscreen:
		viewer.window.SetFullScreen(!viewer.window.FullScreen())
	case ActionQuit:
		if viewer.onQuit != nil {
			viewer.onQuit()
		}
	}
}

// SetStatus briefly shows text over the image.
func (viewer *Window) SetStatus(text string) {
	viewer.statusText.Text = text
	viewer.statusText.Show()
	viewer.statusText.Refresh()

	viewer.statusMu.Lock()
	defer viewer.statusMu.Unlock()
	viewer.statusSeq++
	seq := viewer.statusSeq
	if viewer.statusTimer != nil {
		viewer.statusTimer.Stop()
	}
	viewer.statusTimer = time.AfterFunc(viewer.config.StatusTimeout, func() {
		fyne.Do(func() {
			viewer.statusMu.Lock()
			current := seq == viewer.statusSeq
			viewer.statusMu.Unlock()
			if current {
				viewer.statusText.Hide()
			}
		})
	})
}

func (viewer *Window) setFrame(frame image.Image) {
	fyne.Do(func() {
		viewer.image.Image = frame
		viewer.image.Refresh()
	})
}

// FormatInterval renders an interval in seconds without trailing zeros.
func FormatInterval(interval time.Duration) string {
	return strconv.FormatFloat(interval.Seconds(), 'f', -1, 64) + "s"
}
