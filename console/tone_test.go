package console

import (
	"testing"

	"github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/board"
)

func TestTones_CapacityKeepsOneSlotFree(t *testing.T) {
	tn := NewTones(&board.HostBuzzer{})

	for i := 0; i < 30; i++ {
		tn.Enqueue(440, 50)
	}
	if got, want := tn.Len(), ToneQueueCap-1; got != want {
		t.Fatalf("Len = %d, want %d", got, want)
	}
}

func TestTones_FIFOAndAtMostOneSounding(t *testing.T) {
	hb := &board.HostBuzzer{}
	tn := NewTones(hb)

	tn.Enqueue(100, 10)
	tn.Enqueue(200, 10)
	tn.Enqueue(300, 10)

	tn.Pump(0)
	if !tn.Sounding() || hb.Freq != 100 {
		t.Fatalf("first pump: sounding=%v freq=%d", tn.Sounding(), hb.Freq)
	}

	// Still inside the first tone: nothing new starts.
	tn.Pump(9)
	if hb.Freq != 100 || hb.Starts != 1 {
		t.Fatalf("second tone started while first still sounding (starts=%d)", hb.Starts)
	}

	// First ends, second starts on the same pump.
	tn.Pump(10)
	if hb.Freq != 200 {
		t.Fatalf("freq = %d, want 200", hb.Freq)
	}
	tn.Pump(20)
	if hb.Freq != 300 {
		t.Fatalf("freq = %d, want 300 (FIFO order broken)", hb.Freq)
	}

	tn.Pump(30)
	if tn.Sounding() || hb.On {
		t.Fatal("buzzer still on after queue drained")
	}
}

func TestTones_DropOnFullPreservesOrder(t *testing.T) {
	hb := &board.HostBuzzer{}
	tn := NewTones(hb)

	for i := 0; i < 30; i++ {
		tn.Enqueue(uint32(1000+i), 5)
	}

	// The first 23 survive; the rest were dropped.
	now := int64(0)
	for i := 0; i < ToneQueueCap-1; i++ {
		tn.Pump(now)
		if want := uint32(1000 + i); hb.Freq != want {
			t.Fatalf("tone %d: freq = %d, want %d", i, hb.Freq, want)
		}
		now += 5
	}
	tn.Pump(now)
	if tn.Sounding() {
		t.Fatal("dropped events were not dropped")
	}
}

func TestTones_Mute(t *testing.T) {
	hb := &board.HostBuzzer{}
	tn := NewTones(hb)

	tn.Enqueue(500, 100)
	tn.Pump(0)
	if !hb.On {
		t.Fatal("tone did not start")
	}

	tn.Enqueue(600, 100)
	tn.SetMuted(true)
	if hb.On {
		t.Fatal("mute must stop the in-flight tone immediately")
	}
	tn.Enqueue(700, 100)
	if tn.Len() != 0 {
		t.Fatal("enqueue while muted must be a no-op")
	}

	// Unmuting replays nothing.
	tn.SetMuted(false)
	tn.Pump(1)
	if tn.Sounding() {
		t.Fatal("unmute replayed a dropped event")
	}
}
