// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of a ruler picker for Gio. The
// material package draws it.
package widget
