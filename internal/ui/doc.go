// Package ui contains the Bubble Tea program for the SkyGen terminal client.
// Model orchestrates messages; helpers in this package own navigation, input,
// rendering and detail screens.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. While the link
//     form is open it receives key presses first; other messages go through a
//     typed handler registry so each tea.Msg is handled by a focused function.
//   - Links arrive as openLinkMsg (from the form, the --open flag or the inbox
//     watcher). The navigation.Manager selects the tab and pushes the
//     destination immediately, then a pendingExpiredMsg carrying the link's
//     token is scheduled after the manager's clear delay. A stale token never
//     clears a newer link.
//
// State ownership:
//   - Navigation stacks and the selected tab live in navigation.Manager. The
//     model subscribes to its changes to reset filters and errors.
//   - Each tab keeps a root list in internal/ui/state.Level, which tracks
//     items, filtering and viewport calculations.
//   - Catalog entries come from internal/state stores and are read at render
//     time, so detail screens for unknown ids still render.
//   - Share actions run through internal/ui/command so they trace and report
//     results asynchronously.
package ui
