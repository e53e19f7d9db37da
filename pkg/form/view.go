package form

// View is the set of display capabilities the controller depends on. Every
// method must be safe for concurrent use; the controller does not serialise
// overlapping submissions.
type View interface {
	// ReadTopic returns the current topic field value, verbatim.
	ReadTopic() string
	// ReadTone returns the current tone selection, verbatim.
	ReadTone() string

	// SetBusy toggles the busy indicator on the generate control.
	SetBusy(busy bool)

	ShowResult()
	HideResult()

	SetSetup(text string)
	SetPunchline(text string)
	// SetExplanation writes the explanation text and reveals its element.
	SetExplanation(text string)
	HideExplanation()

	// SetupText and PunchlineText return the currently displayed texts.
	SetupText() string
	PunchlineText() string

	// Notify surfaces a message to the user. Interactive views block until
	// the user acknowledges it.
	Notify(message string)
}
