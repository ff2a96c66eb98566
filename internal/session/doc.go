// Package session drives a single Learn or Test run over one collection.
// Both modes share one state machine; the mode decides how words are
// chosen, whether answers are kept and whether the run ends.
package session
