package pagingcarousel

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/internal"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/locale"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/scroll"
)

// Pane is the content of one page. Render draws into frame, which is already
// offset by the current scroll position and clipped to the window.
type Pane interface {
	Render(renderer *sdl.Renderer, frame sdl.Rect)
}

// PaneFunc adapts a function to the Pane interface.
type PaneFunc func(renderer *sdl.Renderer, frame sdl.Rect)

func (f PaneFunc) Render(renderer *sdl.Renderer, frame sdl.Rect) { f(renderer, frame) }

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithSettings replaces the navigation layout settings.
func WithSettings(s navigation.Settings) ContainerOption {
	return func(c *Container) { c.settings = s }
}

// WithMeasurers sets how title and badge text is measured. Either may be
// nil to keep the font-based default.
func WithMeasurers(titles, badges button.TextMeasurer) ContainerOption {
	return func(c *Container) {
		if titles != nil {
			c.titleMeasurer = titles
		}
		if badges != nil {
			c.badgeMeasurer = badges
		}
	}
}

// WithTranslator localizes titles and the badge overflow text.
func WithTranslator(t *locale.Translator) ContainerOption {
	return func(c *Container) { c.translator = t }
}

// WithLogger sets the logger for the container, its navigation bar and pager.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLeftAccessory pins an accessory to the navigation bar's leading edge.
func WithLeftAccessory(a *navigation.Accessory) ContainerOption {
	return func(c *Container) { c.accessory = a }
}

// WithInitialPage shows page once the container is first laid out.
func WithInitialPage(page int) ContainerOption {
	return func(c *Container) { c.initialPage = page }
}

// WithRepeatTiming sets the hold delay and interval for paging with buttons.
func WithRepeatTiming(delay, interval time.Duration) ContainerOption {
	return func(c *Container) {
		c.directional = internal.NewDirectionalInputWithTiming(delay, interval)
	}
}

type touchOwner int

const (
	touchNone touchOwner = iota
	touchNavigation
	touchPager
)

// Container hosts one pane per navigation item in a paged scroll surface and
// keeps the navigation bar in step with the scroll position.
//
// Everything except PostNavigationItems must be called from the thread that
// runs the container.
type Container struct {
	// OnItemTapped receives taps on navigation titles. When nil, the
	// container scrolls to the tapped page with animation.
	OnItemTapped func(index int)
	// OnSettle is called each time scrolling comes to rest.
	OnSettle func(page int)

	panes  []Pane
	frames []geometry.Rect

	nav        *navigation.View
	pager      *scroll.Pager
	accessory  *navigation.Accessory
	translator *locale.Translator
	logger     *slog.Logger

	settings      navigation.Settings
	titleMeasurer button.TextMeasurer
	badgeMeasurer button.TextMeasurer

	width, height float64
	initialPage   int
	laidOut       bool

	posted atomic.Pointer[[]navigation.Item]
	touch  touchOwner

	directional internal.DirectionalInput
	textures    *internal.TextureCache
}

// NewContainer pairs panes with navigation items one to one. It panics with
// ErrPaneCountMismatch when the counts differ.
func NewContainer(panes []Pane, items []navigation.Item, opts ...ContainerOption) *Container {
	if len(panes) != len(items) {
		panic(fmt.Errorf("%w: %d panes, %d items", ErrPaneCountMismatch, len(panes), len(items)))
	}

	c := &Container{
		panes:         slices.Clone(panes),
		frames:        make([]geometry.Rect, len(panes)),
		logger:        internal.GetInternalLogger(),
		settings:      navigation.DefaultSettings(),
		titleMeasurer: internal.FontMeasurer{Font: internal.Fonts.TitleFont},
		badgeMeasurer: internal.FontMeasurer{Font: internal.Fonts.BadgeFont},
		directional:   internal.NewDirectionalInput(),
	}
	for _, opt := range opts {
		opt(c)
	}

	settings := c.settings
	if c.translator != nil {
		settings = c.translator.Settings(settings)
	}

	c.nav = navigation.NewView(settings, c.titleMeasurer,
		navigation.WithLogger(c.logger),
		navigation.WithBadgeMeasurer(c.badgeMeasurer),
	)
	c.nav.OnItemTapped = c.itemTapped
	c.nav.SetNavigationItems(c.localize(items))
	if c.accessory != nil {
		c.nav.SetLeftAccessory(c.accessory)
	}

	c.pager = scroll.NewPager(len(panes),
		scroll.WithLogger(c.logger),
		scroll.WithDelegate(pagerDelegate{c}),
	)

	return c
}

func (c *Container) localize(items []navigation.Item) []navigation.Item {
	if c.translator == nil {
		return items
	}
	return c.translator.Items(items)
}

// Navigation returns the navigation bar engine.
func (c *Container) Navigation() *navigation.View { return c.nav }

// Pager returns the scroll surface.
func (c *Container) Pager() *scroll.Pager { return c.pager }

// PageCount returns the number of panes.
func (c *Container) PageCount() int { return len(c.panes) }

// CurrentPage returns the page nearest the current scroll offset.
func (c *Container) CurrentPage() int { return c.pager.CurrentPage() }

// TopInset is the height of the navigation bar overlaying the top of every
// pane. Panes should keep content below it.
func (c *Container) TopInset() float64 { return c.nav.Height() }

// PaneFrames returns the pane frames in content coordinates.
func (c *Container) PaneFrames() []geometry.Rect { return slices.Clone(c.frames) }

// Layout sizes the container. The navigation bar spans the full width at
// the top; panes fill the container and are chained left to right.
func (c *Container) Layout(width, height float64) {
	c.width, c.height = width, height

	c.nav.SetBounds(width, c.settings.Height)
	c.layoutPanes(width, height)
	c.pager.SetViewport(geometry.Size{Width: width, Height: height})

	if !c.laidOut {
		c.laidOut = true
		if c.initialPage > 0 {
			c.ScrollToPage(c.initialPage, false)
		}
	}

	c.nav.ScrollBoundsDidChange(c.scrollState())
	c.logger.Debug("Laid out paging container", "width", width, "height", height, "pages", len(c.panes))
}

// layoutPanes pins the first pane to the leading edge, chains each following
// pane to its predecessor's trailing edge, and so ends the last pane at the
// content's trailing edge.
func (c *Container) layoutPanes(width, height float64) {
	for i := range c.frames {
		frame := geometry.Rect{W: width, H: height}
		if i > 0 {
			frame.X = c.frames[i-1].MaxX()
		}
		c.frames[i] = frame
	}
}

func (c *Container) scrollState() navigation.ScrollState {
	return navigation.ScrollState{Offset: c.pager.Offset(), Viewport: c.pager.Viewport()}
}

// SetNavigationItems replaces the navigation items. The count must match
// the number of panes.
func (c *Container) SetNavigationItems(items []navigation.Item) error {
	if len(items) != len(c.panes) {
		c.logger.Warn("Rejected navigation items", "items", len(items), "panes", len(c.panes))
		return fmt.Errorf("%w: %d items for %d panes", ErrItemCountMismatch, len(items), len(c.panes))
	}
	c.nav.SetNavigationItems(c.localize(items))
	if c.textures != nil {
		c.textures.DropRoles(internal.TitleTexture, internal.BadgeLabelTexture)
	}
	return nil
}

// PostNavigationItems hands items to the container from any goroutine. The
// most recent post is applied by the next Update.
func (c *Container) PostNavigationItems(items []navigation.Item) {
	posted := slices.Clone(items)
	c.posted.Store(&posted)
}

// ScrollToPage shows page, animating through the normal scroll path when
// animated is set.
func (c *Container) ScrollToPage(page int, animated bool) {
	c.pager.ScrollToPage(page, animated)
	if !animated {
		c.settle()
	}
}

// Update advances the container by dt: posted and deferred item updates
// are applied, then scroll and press animations step.
func (c *Container) Update(dt time.Duration) {
	if posted := c.posted.Swap(nil); posted != nil {
		if err := c.SetNavigationItems(*posted); err != nil {
			c.logger.Warn("Dropped posted navigation items", "error", err)
		}
	}
	c.nav.FlushPending()
	c.pager.Step(dt)
	c.nav.Step(dt)
}

func (c *Container) itemTapped(index int) {
	c.logger.Debug("Navigation item tapped", "index", index)
	if c.OnItemTapped != nil {
		c.OnItemTapped(index)
		return
	}
	c.ScrollToPage(index, true)
}

func (c *Container) settle() {
	state := c.scrollState()
	c.nav.ContainerDidSettle(state)

	page := c.pager.CurrentPage()
	c.logger.Debug("Paging container settled", "page", page, "offset", state.Offset)
	if c.OnSettle != nil {
		c.OnSettle(page)
	}
}

// TouchDown starts a touch at p in container coordinates. Touches landing on
// a navigation title or the accessory belong to the bar; other touches on
// the bar are ignored; everything else drags the pages.
func (c *Container) TouchDown(p geometry.Point, at time.Time) {
	c.TouchCancel()

	switch {
	case c.nav.TouchDown(p):
		c.touch = touchNavigation
	case p.Y < c.TopInset():
		c.touch = touchNone
	default:
		c.touch = touchPager
		c.pager.BeginDrag(p.X, at)
	}
}

// TouchMove follows the active touch.
func (c *Container) TouchMove(p geometry.Point, at time.Time) {
	if c.touch == touchPager {
		c.pager.DragTo(p.X, at)
	}
}

// TouchUp ends the active touch at p.
func (c *Container) TouchUp(p geometry.Point, at time.Time) {
	owner := c.touch
	c.touch = touchNone

	switch owner {
	case touchNavigation:
		c.nav.TouchUp(p)
	case touchPager:
		c.pager.EndDrag(p.X, at)
	}
}

// TouchCancel abandons the active touch.
func (c *Container) TouchCancel() {
	owner := c.touch
	c.touch = touchNone

	switch owner {
	case touchNavigation:
		c.nav.TouchCancel()
	case touchPager:
		c.pager.CancelDrag()
	}
}

// pagerDelegate forwards scroll signals to the navigation bar and folds the
// end-of-scroll signals into a single settle.
type pagerDelegate struct{ c *Container }

func (d pagerDelegate) WillBeginDragging(*scroll.Pager) {
	d.c.nav.ContainerDidBeginScrolling(d.c.scrollState())
}

func (d pagerDelegate) DidScroll(*scroll.Pager) {
	d.c.nav.ContainerDidScroll(d.c.scrollState())
}

func (d pagerDelegate) DidEndDragging(_ *scroll.Pager, decelerate bool) {
	if !decelerate {
		d.c.settle()
	}
}

func (d pagerDelegate) DidEndDecelerating(*scroll.Pager) { d.c.settle() }

func (d pagerDelegate) DidEndScrollingAnimation(*scroll.Pager) { d.c.settle() }
