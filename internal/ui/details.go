// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/render"
)

const (
	// ImageLoading shows while the asset check is in flight.
	ImageLoading = "[ image: loading… ]"

	// ImageUnavailable shows when the asset could not be reached.
	ImageUnavailable = "[ image unavailable ]"

	imageFmt     = "[ image: %s ]"
	checkTimeout = 10 * time.Second
)

// AssetChecker checks that an asset url answers.
type AssetChecker interface {
	CheckAsset(ctx context.Context, url string) error
}

// Details is the side panel previewing the activated row.
type Details struct {
	*tview.TextView

	styles  *Styles
	checker AssetChecker
	queue   QueueFunc
	actions *KeyActions
	closeFn func()
	title   string
	image   string
	hasImg  bool
	lines   []render.Detail
	gen     int
}

// NewDetails returns a detail panel. Check results land through queue.
func NewDetails(styles *Styles, checker AssetChecker, queue QueueFunc) *Details {
	d := &Details{
		TextView: tview.NewTextView(),
		styles:   styles,
		checker:  checker,
		queue:    queue,
		actions:  NewKeyActions(),
	}
	d.SetBorder(true)
	d.SetBorderPadding(0, 0, 1, 1)
	d.SetDynamicColors(true)
	d.SetWrap(true)
	d.SetWordWrap(true)
	d.actions.Bulk(KeyMap{
		tcell.KeyEsc: NewKeyAction("Close", d.closeCmd, true),
		KeyX:         NewKeyAction("Close", d.closeCmd, false),
	})
	d.SetInputCapture(d.actions.Handle)

	return d
}

// Actions returns the panel key actions.
func (d *Details) Actions() *KeyActions {
	return d.actions
}

// Hints returns the panel menu hints.
func (d *Details) Hints() MenuHints {
	return d.actions.Hints()
}

// SetCloseFn sets the callback closing the panel.
func (d *Details) SetCloseFn(f func()) {
	d.closeFn = f
}

func (d *Details) closeCmd(*tcell.EventKey) *tcell.EventKey {
	if d.closeFn != nil {
		d.closeFn()
	}
	return nil
}

// Show previews a record. Records with an image slot check img first.
func (d *Details) Show(title string, lines []render.Detail, hasImage bool, img string) {
	d.gen++
	d.title, d.lines, d.hasImg = title, lines, hasImage
	d.image = ""
	if hasImage {
		d.image = ImageUnavailable
		if img != "" {
			d.image = ImageLoading
			go d.checkAsset(d.gen, img)
		}
	}
	d.Refresh()
}

// Reset drops the previewed record. Pending checks are ignored.
func (d *Details) Reset() {
	d.gen++
	d.title, d.lines, d.image, d.hasImg = "", nil, "", false
	d.Clear()
}

// Image returns the current image line.
func (d *Details) Image() string {
	return d.image
}

func (d *Details) checkAsset(gen int, url string) {
	state := fmt.Sprintf(imageFmt, url)
	if d.checker == nil {
		state = ImageUnavailable
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := d.checker.CheckAsset(ctx, url); err != nil {
			state = ImageUnavailable
		}
	}

	d.queue(func() {
		if gen != d.gen {
			return
		}
		d.image = state
		d.Refresh()
	})
}

// Refresh redraws the panel. Call it on the UI goroutine.
func (d *Details) Refresh() {
	d.SetBackgroundColor(d.styles.Bg)
	d.SetBorderColor(d.styles.Focus)
	d.SetTitleColor(d.styles.Title)
	d.SetTitle(fmt.Sprintf(" %s ", tview.Escape(d.title)))

	var b strings.Builder
	if d.hasImg {
		fmt.Fprintf(&b, "[%s]%s[-]\n\n", Tag(d.styles.Muted), tview.Escape(d.image))
	}
	for _, l := range d.lines {
		fmt.Fprintf(&b, "[%s::b]%s[-::-]\n%s\n\n", Tag(d.styles.Header), tview.Escape(l.Label), tview.Escape(l.Value))
	}
	d.SetText(strings.TrimRight(b.String(), "\n"))
	d.ScrollToBeginning()
}
