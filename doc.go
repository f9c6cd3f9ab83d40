// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ruler implements the value model of a scrollable ruler picker.

A ruler is a tape of ticks, Step apart, running from Min to Max. The
user drags the tape under a fixed indicator to select the tick nearest
to it.

Model converts between scroll offsets in pixels and values, and lays
out the tape for a renderer. Controller holds the selected value,
applies an optional veto to changes and snaps the Surface to the
selected tick when a gesture ends.

Package gioui.org/ruler/widget hosts a Controller in a Gio widget, and
gioui.org/ruler/widget/material draws it.
*/
package ruler
