// Package ui contains the Bubble Tea program that powers the walkthrough
// browser. The Model type focuses on message orchestration while dedicated
// helpers own key handling, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes).
//   - Key presses are matched against the keyMap (internal/ui/keys.go) and
//     translated into navigator actions in internal/ui/navigation.go. While the
//     help overlay is open only the help and back keys are honoured.
//
// State ownership:
//   - Screen, cursor, and the chapter/step display rows live in
//     internal/ui/state.Navigator. The model never indexes steps directly; it
//     asks the navigator which step is highlighted.
//   - Completion and prerequisite unlocking live in internal/state's
//     ProgressStore, which the navigator drives when a step is toggled.
//
// Rendering (internal/ui/view.go) is a pure function of the model: header,
// list or step details, a transient info line, and the key footer, clipped
// to the configured width and height.
package ui
