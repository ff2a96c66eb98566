// Package app routes input events to the current screen. The screens form
// a closed set (setup, learn, test) and every update step returns a
// Result: either a pending operation to run off the event loop or an
// action for the router to perform.
package app
