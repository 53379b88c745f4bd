// Package navigation implements the carousel navigation bar: the item model,
// the per-page position table and the interpolation that slides and fades
// titles as the paged content scrolls.
//
// A View is driven from a single event thread. It never starts goroutines
// and never blocks; the paging container feeds it scroll state and touches,
// and a renderer reads ItemViews back out.
package navigation

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/button"
	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/geometry"
)

// ScrollState is a snapshot of the paging surface.
type ScrollState struct {
	Offset   float64
	Viewport geometry.Size
}

// PageFraction returns the continuous page position, unclamped.
func (s ScrollState) PageFraction() float64 {
	if s.Viewport.Width <= 0 {
		return 0
	}
	return s.Offset / s.Viewport.Width
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the logger used for layout diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithBadgeMeasurer measures badge text with a different font than titles.
func WithBadgeMeasurer(m button.TextMeasurer) Option {
	return func(v *View) {
		if m != nil {
			v.badges = m
		}
	}
}

// View owns the ordered ItemViews and the position table, and translates
// scroll offsets into per-item offsets and opacities.
type View struct {
	// OnItemTapped receives the current index of a tapped item.
	OnItemTapped func(index int)
	// OnVisualStateChanged runs at the end of each interpolation pass, while
	// the pass is still in flight. Item updates made from it are deferred.
	OnVisualStateChanged func(pageFraction float64)

	settings Settings
	titles   button.TextMeasurer
	badges   button.TextMeasurer
	logger   *slog.Logger

	width  float64
	height float64

	items     []Item
	views     []*ItemView
	positions [][]float64

	scroll    ScrollState
	hasScroll bool

	accessory *Accessory
	touched   *button.Button

	updating   bool
	pending    []Item
	hasPending bool
}

// NewView creates an empty navigation bar. titles measures rendered titles
// and, unless WithBadgeMeasurer is given, badge text.
func NewView(settings Settings, titles button.TextMeasurer, opts ...Option) *View {
	v := &View{
		settings: settings,
		titles:   titles,
		badges:   titles,
		logger:   slog.Default(),
		height:   settings.Height,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Settings returns the layout knobs.
func (v *View) Settings() Settings { return v.settings }

// Height returns the bar's current height.
func (v *View) Height() float64 { return v.height }

// Width returns the bar's current width.
func (v *View) Width() float64 { return v.width }

// Items returns a copy of the current items.
func (v *View) Items() []Item { return slices.Clone(v.items) }

// ItemViews returns the current views in item order.
func (v *View) ItemViews() []*ItemView { return slices.Clone(v.views) }

// Positions returns a copy of the position table, indexed [item][page].
func (v *View) Positions() [][]float64 {
	out := make([][]float64, len(v.positions))
	for k, row := range v.positions {
		out[k] = slices.Clone(row)
	}
	return out
}

// ScrollState returns the last scroll state seen, if any.
func (v *View) ScrollState() (ScrollState, bool) { return v.scroll, v.hasScroll }

// LeftAccessory returns the leading accessory, or nil.
func (v *View) LeftAccessory() *Accessory { return v.accessory }

// HasPending reports whether an item update is waiting for FlushPending.
func (v *View) HasPending() bool { return v.hasPending }

// SetNavigationItems replaces the tab set. When the titles match the current
// ones, only badges are refreshed and every ItemView is kept. Otherwise all
// views are rebuilt and the position table recomputed. Calls made while an
// interpolation pass is in flight are queued for FlushPending.
func (v *View) SetNavigationItems(items []Item) {
	items = slices.Clone(items)

	if v.updating {
		v.pending = items
		v.hasPending = true
		v.logger.Debug("Deferring navigation items until the next turn", "count", len(items))
		return
	}

	if sameTitles(v.items, items) && len(v.views) == len(items) {
		for i, view := range v.views {
			view.item = items[i]
			view.Button.Hidden = items[i].IsHidden
			view.Badge.SetCount(v.badgeCount(items[i]), false)
		}
		v.items = items
		v.logger.Debug("Refreshed navigation badges", "count", len(items))
		return
	}

	if v.touched != nil {
		v.touched.TouchCancel()
		v.touched = nil
	}

	v.items = items
	v.views = make([]*ItemView, 0, len(items))
	for _, item := range items {
		v.views = append(v.views, v.newItemView(item))
	}

	v.logger.Debug("Rebuilt navigation items", "titles", Titles(items))
	v.layout()
}

// FlushPending applies a deferred SetNavigationItems call. It reports whether
// there was one.
func (v *View) FlushPending() bool {
	if !v.hasPending || v.updating {
		return false
	}
	items := v.pending
	v.pending, v.hasPending = nil, false
	v.SetNavigationItems(items)
	return true
}

func (v *View) badgeCount(item Item) int {
	if item.BadgeCount < 0 {
		v.logger.Warn("Negative badge count treated as zero", "title", item.Title, "count", item.BadgeCount)
		return 0
	}
	return item.BadgeCount
}

func (v *View) newItemView(item Item) *ItemView {
	s := v.settings
	title := TruncateTitle(item.Title, s.MaxTitleCharacters, s.TruncatedCharacterCount)

	var w, h float64
	if v.titles != nil {
		w, h = v.titles.MeasureText(title)
	}

	view := &ItemView{
		item:    item,
		title:   title,
		size:    geometry.Size{Width: w, Height: h},
		opacity: 1,
		Button:  button.New(geometry.Rect{W: w, H: h}),
		Badge:   button.NewBadge(s.badgeStyle(item), v.badges),
	}

	view.Button.Hidden = item.IsHidden
	view.Button.HitInsets = geometry.Insets{
		Top:    -s.VerticalHitSlop,
		Bottom: -s.VerticalHitSlop,
		Left:   -s.MinimumInterItemPadding / 2,
		Right:  -s.MinimumInterItemPadding / 2,
	}
	view.Button.OnTouchUpInside = func(*button.Button) {
		v.handleTap(view)
	}

	view.Badge.SetAlignment(item.BadgeAlignment)
	view.Badge.SetCount(v.badgeCount(item), false)

	return view
}

// handleTap resolves the view's index from current membership, so views
// dropped by a rebuild resolve to nothing.
func (v *View) handleTap(view *ItemView) {
	index := slices.Index(v.views, view)
	if index < 0 {
		v.logger.Debug("Ignoring tap on a detached navigation item", "title", view.title)
		return
	}
	if v.OnItemTapped != nil {
		v.OnItemTapped(index)
	}
}

// SetBounds resizes the bar. Any size change recomputes the position table.
func (v *View) SetBounds(width, height float64) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	v.layout()
}

func (v *View) layout() {
	widths := make([]float64, len(v.views))
	for k, view := range v.views {
		widths[k] = view.size.Width
	}
	v.positions = ComputePositions(widths, v.width, v.settings)

	for k, view := range v.views {
		view.place(v.positions[k][0], (v.height-view.size.Height)/2)
		view.opacity = 1
	}
	v.placeAccessory()

	v.logger.Debug("Computed navigation positions", "items", len(v.views), "width", v.width)

	if v.hasScroll {
		v.UpdateVisualState(v.scroll)
	}
}

// SetLeftAccessory installs, replaces or, with nil, removes the leading accessory.
func (v *View) SetLeftAccessory(a *Accessory) {
	if v.accessory != nil && v.touched == v.accessory.Button {
		v.touched.TouchCancel()
		v.touched = nil
	}
	v.accessory = a
	v.placeAccessory()
}

func (v *View) placeAccessory() {
	if v.accessory == nil {
		return
	}
	x := 0.0
	if v.hasScroll {
		x = -math.Max(0, v.scroll.Offset)
	}
	v.accessory.place(x, (v.height-v.accessory.size.Height)/2)
}

// UpdateVisualState interpolates every item between the layouts of the two
// pages around state.Offset and fades it by distance from the bar's center.
// It is a no-op for an empty bar or a viewport without area, and applying
// the same state twice yields the same result.
func (v *View) UpdateVisualState(state ScrollState) {
	v.scroll, v.hasScroll = state, true

	n := len(v.views)
	if n == 0 || state.Viewport.IsEmpty() || len(v.positions) != n {
		return
	}

	prev := v.updating
	v.updating = true
	defer func() { v.updating = prev }()

	left, right, fraction := PageSpan(state.Offset, state.Viewport.Width, n)

	centerX := v.width / 2
	if v.width <= 0 {
		centerX = state.Viewport.Width / 2
	}
	maxDistance := state.Viewport.Width / 2

	for k, view := range v.views {
		from := v.positions[k][left]
		to := v.positions[k][right]
		x := from + fraction*(to-from)

		view.place(x, view.y)
		distance := math.Abs(x + view.size.Width/2 - centerX)
		view.opacity = Opacity(distance, maxDistance, v.settings.MinimumOpacity)
	}

	v.placeAccessory()

	if v.OnVisualStateChanged != nil {
		v.OnVisualStateChanged(state.PageFraction())
	}
}

// ContainerDidBeginScrolling records the scroll state a drag starts from.
func (v *View) ContainerDidBeginScrolling(state ScrollState) {
	v.scroll, v.hasScroll = state, true
}

// ContainerDidScroll follows the content as it moves.
func (v *View) ContainerDidScroll(state ScrollState) {
	v.UpdateVisualState(state)
}

// ContainerDidSettle is called once scrolling comes to rest.
func (v *View) ContainerDidSettle(state ScrollState) {
	v.UpdateVisualState(state)
}

// ScrollBoundsDidChange re-applies layout after the scroll surface resized.
func (v *View) ScrollBoundsDidChange(state ScrollState) {
	v.UpdateVisualState(state)
}

// TouchDown hit-tests items first and then the accessory. It reports whether
// something began tracking the touch.
func (v *View) TouchDown(p geometry.Point) bool {
	v.TouchCancel()

	for _, view := range v.views {
		if view.Button.TouchDown(p) {
			v.touched = view.Button
			return true
		}
	}
	if v.accessory != nil && v.accessory.Button.TouchDown(p) {
		v.touched = v.accessory.Button
		return true
	}
	return false
}

// TouchUp ends the tracked touch at p.
func (v *View) TouchUp(p geometry.Point) {
	b := v.touched
	v.touched = nil
	if b != nil {
		b.TouchUp(p)
	}
}

// TouchCancel abandons the tracked touch.
func (v *View) TouchCancel() {
	if v.touched != nil {
		v.touched.TouchCancel()
		v.touched = nil
	}
}

// Tracking reports whether a touch is held on an item or the accessory.
func (v *View) Tracking() bool { return v.touched != nil }

// Step advances press and badge animations.
func (v *View) Step(dt time.Duration) {
	for _, view := range v.views {
		view.Button.Step(dt)
		view.Badge.Step(dt)
	}
	if v.accessory != nil {
		v.accessory.Button.Step(dt)
	}
}
