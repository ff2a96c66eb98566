package app

import (
	"codeberg.org/langl/langl/internal/collection"
	"codeberg.org/langl/langl/internal/session"
)

// Event is one user input or completion delivered to the router.
type Event interface {
	event()
}

// LoadDirectory scans a directory for collection files.
type LoadDirectory struct{ Dir string }

// CollectionsLoaded completes a LoadDirectory scan.
type CollectionsLoaded struct {
	Dir         string
	Collections []*collection.Collection
	Err         error
}

// SelectCollection picks a loaded collection by id.
type SelectCollection struct{ ID int }

// SelectMode picks the work mode for the next session.
type SelectMode struct{ Mode session.Mode }

// SelectWordCount sets the number of words asked in Test mode.
type SelectWordCount struct{ Count int }

// StartSession starts the selected mode on the selected collection.
type StartSession struct{}

// Submit sends typed text as an answer.
type Submit struct{ Text string }

// Acknowledge is the Enter key.
type Acknowledge struct{}

// Cancel is the Escape key.
type Cancel struct{}

// Save exports finished Test results. An empty Path uses the suggested
// file name inside the results directory.
type Save struct{ Path string }

func (LoadDirectory) event()     {}
func (CollectionsLoaded) event() {}
func (SelectCollection) event()  {}
func (SelectMode) event()        {}
func (SelectWordCount) event()   {}
func (StartSession) event()      {}
func (Submit) event()            {}
func (Acknowledge) event()       {}
func (Cancel) event()            {}
func (Save) event()              {}
