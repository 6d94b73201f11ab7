// Package sunbeam provides spatial, directional focus navigation for
// terminal and other grid-based UIs, with scroll containers that keep the
// focused element in view.
//
// A Container owns the focus tree and a FocusChangeBus. Scrolls mount on a
// bus scope and handle focus changes raised inside it; Focusables are the
// leaves. When a leaf gains focus it measures itself and notifies the
// nearest Scroll, which computes a new offset with ComputeOffset and
// animates to it.
//
//	c := sunbeam.MustNewContainer()
//	menu := sunbeam.MustNewScroll(sunbeam.WithScrollDirection(sunbeam.ScrollVertical))
//	scope := menu.Mount(c.Scope())
//
//	item := sunbeam.NewFocusable(scope, sunbeam.WithKey("play"))
//	item.Ref().Set(box) // once rendered
//	if err := item.Mount(c); err != nil {
//		return err
//	}
//
//	c.HandleKey(sunbeam.KeyArrowDown)
//	menu.Tick(time.Second / 60)
package sunbeam
