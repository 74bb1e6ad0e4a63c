// Package daemon integrates with a running mako instance.
//
// mako has no IPC surface for configuration beyond re-reading its config
// file, so this package shells out to `makoctl reload` after a save and
// optionally sends a `notify-send` notification, which doubles as a live
// preview of the new notification style. Both calls are synchronous and
// best effort; the editor keeps running if either tool is missing.
package daemon
