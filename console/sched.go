package console

import "github.com/NB6RULES/Nadec-Biju-Fabacademy-Files/x/timex"

type renderTarget struct {
	interval int64
	last     int64
	render   func(now int64)
}

// Scheduler drives the two display targets at independent cadences from
// the shared tick. There is no drift compensation: a tick that arrives
// late still produces at most one render per target, and the stamp is
// set to now rather than advanced by the interval. Frames are never
// batched to catch up; the games are tuned against that behaviour.
type Scheduler struct {
	targets [2]renderTarget
}

func NewScheduler(matrixEvery, panelEvery int64, matrix, panel func(now int64)) *Scheduler {
	return &Scheduler{
		targets: [2]renderTarget{
			{interval: matrixEvery, render: matrix},
			{interval: panelEvery, render: panel},
		},
	}
}

// Tick checks both cadences and renders whichever is due.
func (sc *Scheduler) Tick(now int64) {
	for i := range sc.targets {
		t := &sc.targets[i]
		if t.render == nil {
			continue
		}
		if timex.Since(now, t.last) >= t.interval {
			t.last = now
			t.render(now)
		}
	}
}
