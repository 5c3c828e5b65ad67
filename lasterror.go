// lasterror.go — a last-error slot for callers that can only carry a code.
//
// Some boundaries (C callers, exit statuses, RPC status fields) can return a
// Code but not a whole Result. Recorder keeps the last Result so the message
// can be fetched in a separate call:
//
//	code := fruitbowl.RunRecorded(doWork)
//	if !code.OK() {
//	    log.Print(fruitbowl.LastMessage())
//	}
//
// The Recorder's own state is guarded by a mutex. It keeps a detached copy of
// each stored Result and hands out detached copies, so no reference count is
// ever shared across the goroutines that use it.
package fruitbowl

import "sync"

// Recorder holds the most recent Result produced through Run.
// The zero value is ready to use and reports Success.
type Recorder struct {
	mu   sync.Mutex
	last Result
}

// Run calls op, records a detached copy of its Result and returns only the
// code. The Result returned by op is neither retained nor released, so op may
// return a Result the caller still owns.
func (rc *Recorder) Run(op func() Result) Code {
	r := op()
	rc.Store(r)
	return r.Code()
}

// Store records a detached copy of r. r itself is not retained.
func (rc *Recorder) Store(r Result) {
	d := r.Detach()
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.last.Release()
	rc.last = d
}

// Code returns the code of the recorded Result.
func (rc *Recorder) Code() Code {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last.Code()
}

// Message returns the message of the recorded Result.
func (rc *Recorder) Message() string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last.Message()
}

// Last returns a detached copy of the recorded Result.
func (rc *Recorder) Last() Result {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.last.Detach()
}

// Reset releases the recorded Result and goes back to Success.
func (rc *Recorder) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.last.Release()
	rc.last = Result{}
}

var defaultRecorder Recorder

// RunRecorded runs op through the process-wide Recorder.
func RunRecorded(op func() Result) Code { return defaultRecorder.Run(op) }

// LastCode returns the code recorded by the last RunRecorded call.
func LastCode() Code { return defaultRecorder.Code() }

// LastMessage returns the message recorded by the last RunRecorded call.
func LastMessage() string { return defaultRecorder.Message() }

// ResetLast clears the process-wide Recorder.
func ResetLast() { defaultRecorder.Reset() }
