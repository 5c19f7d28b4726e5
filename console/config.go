package console

// Compile-time configuration. The device has no config surface; these
// values match the tuned firmware the games were written against.
const (
	MatrixW     = 8
	MatrixH     = 8
	MatrixCount = MatrixW * MatrixH

	DebounceMs    = 30   // raw level must hold this long to commit
	MatrixFrameMs = 33   // pixel grid cadence
	PanelFrameMs  = 100  // text panel cadence
	RoundOverMs   = 2000 // auto-return to menu after a round

	ToneQueueCap = 24 // one slot is always kept free
)
