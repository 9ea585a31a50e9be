package state

import (
	"strings"
	"time"
)

// Toast is the transient notice. Showing a new one replaces the previous
// one; there is no queue.
type Toast struct {
	Message string
	Seq     uint64
	ShownAt time.Time
}

// Visible reports whether a message is displayed.
func (t Toast) Visible() bool {
	return t.Message != ""
}

type toastState struct {
	current Toast
	seq     uint64
}

func (t *toastState) show(msg string, at time.Time) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		t.current = Toast{}
		return
	}
	t.seq++
	t.current = Toast{Message: msg, Seq: t.seq, ShownAt: at}
}

func (t *toastState) dismiss(seq uint64) {
	if seq != 0 && seq != t.current.Seq {
		return
	}
	t.current = Toast{}
}
