package controller

// Message types sent to the batch progress program.
type barrelDoneMsg struct {
	indexFile string
}

type batchDoneMsg struct{}
