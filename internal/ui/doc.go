// Package ui contains the Bubble Tea program that shows a sectioned list
// laid out by the layout engine. The Model type focuses on message
// orchestration while dedicated helpers own scrolling, prompts, rendering and
// data updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a prompt (filter or jump) is open, key presses go to the prompt.
//     Otherwise the message is routed through a typed handler registry so
//     each tea.Msg is handled by a focused function.
//   - Every update ends in finishUpdate, which runs a layout pass whenever
//     the screen host recorded a layout request.
//
// State ownership:
//   - layout.Engine owns the attached elements and scroll position.
//   - screen.Screen is the engine's host: it binds fixture rows and paints
//     the attached elements.
//   - dispatcher.Dispatcher keeps the unfiltered data set and applies
//     filters and reloads to the screen.
//   - state.AnchorStore remembers the anchor and filter between runs.
//
// Backend interactions:
//   - A backend.Watcher polls the fixture file; Update waits for its events
//     and hands them to the dispatcher.
//   - Smooth scrolls advance one step per smoothTickMsg.
package ui
