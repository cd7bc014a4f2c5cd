// Package leadclient is the submission side of the lead-capture form: a
// small state machine that issues at most one request at a time against the
// POST /api/lead endpoint and turns the server's machine-readable answer
// into transient user-facing feedback.
//
// The controller moves Idle → Submitting → {Succeeded, Failed} → Idle.
// Submit attempts made while one is in flight are dropped rather than
// queued, which is exactly the double-click behavior a form button needs.
// Rendering is delegated to a Presenter implementation supplied by the UI.
package leadclient
