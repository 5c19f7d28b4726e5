package console

import (
	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
)

// ToneEvent is one queued beep.
type ToneEvent struct {
	Freq  uint32 // Hz
	DurMs int64
}

// Tones is the non-blocking audio sequencer: a fixed ring of pending
// tones played strictly FIFO, at most one sounding at a time. Enqueue on
// a full ring silently drops the event; audio is not worth stalling the
// loop for. One slot is kept free so head==tail always means empty.
type Tones struct {
	out board.Buzzer

	q    [ToneQueueCap]ToneEvent
	head uint8 // consumer index
	tail uint8 // producer index

	sounding bool
	endAt    int64
	muted    bool
}

func NewTones(out board.Buzzer) *Tones {
	return &Tones{out: out}
}

// Enqueue appends a tone unless the ring is full or the sequencer is
// muted; either way the caller never blocks and never sees an error.
func (t *Tones) Enqueue(freq uint32, durMs int64) {
	if t.muted {
		return
	}
	next := (t.tail + 1) % ToneQueueCap
	if next == t.head {
		return // full, drop
	}
	t.q[t.tail] = ToneEvent{Freq: freq, DurMs: durMs}
	t.tail = next
}

// Pump advances playback. Call once per tick after game logic so beeps
// requested this tick can start on the same pass.
func (t *Tones) Pump(now int64) {
	if t.sounding && now >= t.endAt {
		t.out.Stop()
		t.sounding = false
	}
	if !t.sounding && t.head != t.tail {
		ev := t.q[t.head]
		t.head = (t.head + 1) % ToneQueueCap
		t.out.Start(ev.Freq)
		t.endAt = now + ev.DurMs
		t.sounding = true
	}
}

// SetMuted toggles mute. Muting stops any in-flight tone immediately
// and discards the queue; unmuting does not replay anything.
func (t *Tones) SetMuted(m bool) {
	t.muted = m
	if m {
		if t.sounding {
			t.out.Stop()
			t.sounding = false
		}
		t.head = 0
		t.tail = 0
	}
}

func (t *Tones) Muted() bool { return t.muted }

// Len is the number of queued (not yet started) tones.
func (t *Tones) Len() int {
	return int((t.tail + ToneQueueCap - t.head) % ToneQueueCap)
}

// Sounding reports whether a tone is currently playing.
func (t *Tones) Sounding() bool { return t.sounding }

// Feedback presets shared by the session and every game.

func (t *Tones) BeepButton() { t.Enqueue(1200, 26) }
func (t *Tones) BeepScore()  { t.Enqueue(1600, 35) }
func (t *Tones) BeepHit()    { t.Enqueue(240, 90) }

func (t *Tones) BeepWin() {
	t.Enqueue(800, 50)
	t.Enqueue(1050, 50)
	t.Enqueue(1400, 80)
}

func (t *Tones) BeepLose() {
	t.Enqueue(1000, 60)
	t.Enqueue(700, 70)
	t.Enqueue(430, 90)
}

func (t *Tones) BeepStart() {
	t.Enqueue(500, 45)
	t.Enqueue(850, 45)
	t.Enqueue(1200, 65)
}
