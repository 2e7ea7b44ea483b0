package netinput

import (
	"context"
	"io"

	"github.com/antares-engine/antares/internal/corelog"
	"github.com/antares-engine/antares/internal/engine"
)

// gameInputServer adapts an engine.Game to InputServer, forwarding every
// accepted InputMessage to Game.InjectInput. It holds no simulation
// state of its own — the tick loop that actually consumes injected input
// still runs wherever the Game itself is driven (cmd/antares-demo or a
// dedicated match process), never here.
type gameInputServer struct {
	game *engine.Game
}

// NewServer returns an InputServer that feeds game.
func NewServer(game *engine.Game) InputServer {
	return &gameInputServer{game: game}
}

func (s *gameInputServer) SubmitInput(ctx context.Context, msg *InputMessage) (*Ack, error) {
	s.game.InjectInput(msg.Admiral, msg.KeyMask)
	return &Ack{AcceptedTick: msg.Tick}, nil
}

func (s *gameInputServer) StreamInput(stream InputService_StreamInputServer) error {
	var last int32
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			return stream.SendAndClose(&Ack{AcceptedTick: last})
		}
		if err != nil {
			corelog.Error("netinput: stream recv failed", corelog.F("error", err))
			return err
		}
		s.game.InjectInput(msg.Admiral, msg.KeyMask)
		last = msg.Tick
	}
}
