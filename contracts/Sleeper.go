package contracts

// Sleeper blocks the calling goroutine for SLEEP formulas.
type Sleeper interface {
	Sleep(seconds int32)
}
