package blackjack

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// Round stages, in the order a round passes through them.
const (
	StageIdle    = "idle"
	StageBetting = "betting"
	StageDealing = "dealing"
	StageTurns   = "turns"
	StageOutcome = "outcome"
	StageVoid    = "void"
)

const (
	eventStart  = "start"
	eventDeal   = "deal"
	eventPlay   = "play"
	eventSettle = "settle"
	eventVoid   = "void"
	eventReset  = "reset"
)

func newStageMachine(logger *log.Logger) *fsm.FSM {
	return fsm.NewFSM(
		StageIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{StageIdle}, Dst: StageBetting},
			{Name: eventDeal, Src: []string{StageBetting}, Dst: StageDealing},
			{Name: eventPlay, Src: []string{StageDealing}, Dst: StageTurns},
			{Name: eventSettle, Src: []string{StageTurns}, Dst: StageOutcome},
			{Name: eventVoid, Src: []string{StageDealing, StageTurns}, Dst: StageVoid},
			{Name: eventReset, Src: []string{StageOutcome, StageVoid}, Dst: StageIdle},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				logger.Debug("round stage", "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// Stage returns the round stage the engine is in. It is StageIdle between
// rounds.
func (e *Engine) Stage() string {
	return e.stage.Current()
}

func (e *Engine) transition(event string) error {
	if err := e.stage.Event(event); err != nil {
		return fmt.Errorf("round stage %s: %w", e.stage.Current(), err)
	}
	return nil
}
