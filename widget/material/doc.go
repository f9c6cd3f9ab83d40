// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws ruler pickers in the style of
// gioui.org/widget/material.
//
// To draw a ruler, lay out a RulerStyle every frame:
//
//	var r widget.Ruler
//	material.Ruler(th, &r, cfg).Layout(gtx)
//
// The style fields may be changed before Layout to override the
// default appearance.
package material
