package state

import (
	"path/filepath"
	"unicode"

	"github.com/sirupsen/logrus"

	fsutil "github.com/kk-code-lab/rfz/internal/fs"
	"github.com/kk-code-lab/rfz/internal/logging"
)

// Controller maps actions onto the file model and the filter session and
// keeps the display in step with them. The entries on screen are always the
// live filter values while Filtering and the model's listing otherwise.
type Controller struct {
	model        *fsutil.Model
	display      Display
	launcher     fsutil.Launcher
	mode         Mode
	previewLimit int64
	log          logrus.FieldLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLauncher sets the launcher used to open files.
func WithLauncher(l fsutil.Launcher) Option {
	return func(c *Controller) {
		c.launcher = l
	}
}

// WithPreviewLimit caps how many bytes of a file are previewed.
func WithPreviewLimit(limit int64) Option {
	return func(c *Controller) {
		if limit > 0 {
			c.previewLimit = limit
		}
	}
}

// WithLogger sets the logger for swallowed navigation and preview errors.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController builds a controller in Browsing mode and pushes the initial
// listing to the display. Call Render to draw it.
func NewController(model *fsutil.Model, display Display, opts ...Option) *Controller {
	c := &Controller{
		model:        model,
		display:      display,
		mode:         Browsing{},
		previewLimit: DefaultPreviewLimit,
		log:          logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithField("component", "controller")

	c.reload("")
	c.display.Main.SetIndex(0)
	return c
}

// Model exposes the file model.
func (c *Controller) Model() *fsutil.Model {
	return c.model
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Visible returns the entries currently shown.
func (c *Controller) Visible() []fsutil.Entry {
	if f, ok := c.mode.(*Filtering); ok {
		return f.Session.Remaining()
	}
	return c.model.Contents()
}

// Handle applies one action and redraws. It returns false once the
// interaction loop should stop.
func (c *Controller) Handle(action Action) bool {
	switch a := action.(type) {
	case QuitAction:
		return false
	case CursorDownAction:
		c.display.Main.Next()
	case CursorUpAction:
		c.display.Main.Prev()
	case GoUpAction:
		c.goUp()
	case OpenAction:
		c.open()
	case RefreshAction:
		c.refresh()
	case FilterResetAction:
		c.resetFilter()
	case FilterCharAction:
		c.filterChar(a.Char)
	case FilterBackspaceAction:
		c.filterBackspace()
	case ToggleHighlightAction:
		c.toggleHighlight()
	case RenderAction:
	default:
		c.log.WithField("action", a).Debug("ignoring unknown action")
		return true
	}

	c.Render()
	return true
}

// Render draws the main list, the path bar and the preview of the
// selected entry, then flushes.
func (c *Controller) Render() {
	c.drawPath()
	c.display.Main.Show()
	c.drawPreview()
	c.display.Sink.Show()
}

func (c *Controller) goUp() {
	before := c.model.Path()
	c.mode = Browsing{}

	if err := c.model.ChangeDirectory(".."); err != nil {
		c.log.WithError(err).WithField("path", before).Warn("cannot go to parent")
	}

	if c.model.Path() == before {
		c.reload(c.selectedName())
		return
	}
	c.reloadFromTop(filepath.Base(before))
}

func (c *Controller) open() {
	name, ok := c.display.Main.Selected()
	if !ok {
		return
	}
	before := c.model.Path()
	c.mode = Browsing{}

	if err := c.model.Open(name, c.launcher); err != nil {
		c.log.WithError(err).WithField("entry", name).Warn("cannot open entry")
	}

	if c.model.Path() == before {
		c.reload(name)
		return
	}
	c.reloadFromTop("")
}

func (c *Controller) refresh() {
	selected := c.selectedName()
	c.mode = Browsing{}
	if err := c.model.Refresh(); err != nil {
		c.log.WithError(err).WithField("path", c.model.Path()).Warn("cannot refresh listing")
	}
	c.reload(selected)
}

// resetFilter abandons filter progress and starts a fresh session over the
// full listing, keeping the current directory.
func (c *Controller) resetFilter() {
	selected := c.selectedName()
	c.mode = newFiltering(c.model.Contents(), "")
	c.reload(selected)
}

func (c *Controller) filterChar(r rune) {
	selected := c.selectedName()
	if unicode.IsUpper(r) || !unicode.IsPrint(r) {
		c.reload(selected)
		return
	}

	f, ok := c.mode.(*Filtering)
	if !ok {
		f = newFiltering(c.model.Contents(), "")
		c.mode = f
	}
	f.advance(r)
	c.reload(selected)
}

// filterBackspace rebuilds the session from the full listing and replays
// the query without its last character.
func (c *Controller) filterBackspace() {
	selected := c.selectedName()
	if f, ok := c.mode.(*Filtering); ok && f.Query != "" {
		c.mode = newFiltering(c.model.Contents(), withoutLastRune(f.Query))
	}
	c.reload(selected)
}

func (c *Controller) toggleHighlight() {
	name, ok := c.display.Main.Selected()
	if !ok {
		return
	}
	entry, ok := c.setHighlight(name)
	if !ok {
		return
	}
	c.display.Main.SetElement(c.display.Main.Index(), itemFor(entry))
}

// setHighlight flips the highlight of name in the model and mirrors the new
// entry into the live filter session, so both stay in agreement.
func (c *Controller) setHighlight(name string) (fsutil.Entry, bool) {
	entry, ok := c.model.ToggleHighlight(name)
	if !ok {
		return fsutil.Entry{}, false
	}
	if f, ok := c.mode.(*Filtering); ok {
		f.Session.UpdateWhere(
			func(e fsutil.Entry) bool { return e.Name == name },
			func(fsutil.Entry) fsutil.Entry { return entry },
		)
	}
	return entry, true
}

// reload pushes the visible entries to the main list. The cursor stays on
// anchor while it is visible; otherwise it keeps its row, clamped.
func (c *Controller) reload(anchor string) {
	main := c.display.Main
	main.Clear()
	main.SetElements(itemsFor(c.Visible()))
	if anchor != "" {
		main.Select(anchor)
	}
}

// reloadFromTop is reload after a directory change: the cursor is re-homed
// to the first row unless anchor names a visible entry.
func (c *Controller) reloadFromTop(anchor string) {
	main := c.display.Main
	main.Clear()
	main.SetElements(itemsFor(c.Visible()))
	main.SetIndex(0)
	if anchor != "" {
		main.Select(anchor)
	}
}

func (c *Controller) selectedName() string {
	name, _ := c.display.Main.Selected()
	return name
}

func (c *Controller) drawPath() {
	text := c.model.Path()
	if f, ok := c.mode.(*Filtering); ok && f.Query != "" {
		text += "  /" + f.Query
	}
	c.display.Path.Clear()
	if err := c.display.Path.WriteTrimmed(text, 0, 0); err != nil {
		c.log.WithError(err).Debug("path bar write failed")
	}
}

func (c *Controller) drawPreview() {
	preview := c.display.Preview
	preview.Clear()
	name, ok := c.display.Main.Selected()
	if !ok {
		preview.SetPreview(Preview{})
	} else {
		preview.SetPreview(BuildPreview(c.model, name, c.previewLimit))
	}
	preview.Show()
}
