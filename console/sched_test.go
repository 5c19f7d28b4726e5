package console

import "testing"

func TestScheduler_IndependentCadences(t *testing.T) {
	var matrix, panel int
	sc := NewScheduler(33, 100,
		func(int64) { matrix++ },
		func(int64) { panel++ },
	)

	now := int64(1000)
	sc.Tick(now) // both stamps start at zero, both fire
	if matrix != 1 || panel != 1 {
		t.Fatalf("first tick: matrix=%d panel=%d", matrix, panel)
	}

	for ms := int64(1); ms <= 100; ms++ {
		sc.Tick(now + ms)
	}
	// 33/66/99 for the matrix, 100 for the panel.
	if matrix != 4 {
		t.Fatalf("matrix renders = %d, want 4", matrix)
	}
	if panel != 2 {
		t.Fatalf("panel renders = %d, want 2", panel)
	}
}

func TestScheduler_NoCatchUpAfterDelayedTick(t *testing.T) {
	var matrix int
	var lastNow int64
	sc := NewScheduler(33, 1<<40,
		func(now int64) { matrix++; lastNow = now },
		func(int64) {},
	)

	sc.Tick(1000)
	matrix = 0

	// Tick stalls for 500 ms: exactly one render, stamped at now, no
	// burst of skipped frames.
	sc.Tick(1500)
	if matrix != 1 {
		t.Fatalf("delayed tick rendered %d frames, want 1", matrix)
	}
	if lastNow != 1500 {
		t.Fatalf("render stamped %d, want 1500", lastNow)
	}

	// Next due point counts from the late render, not the schedule.
	sc.Tick(1532)
	if matrix != 1 {
		t.Fatal("rendered before interval elapsed since late frame")
	}
	sc.Tick(1533)
	if matrix != 2 {
		t.Fatal("render missing at interval after late frame")
	}
}
