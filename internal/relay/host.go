package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// CheckFunc runs one detection invocation and returns the group ordinal.
type CheckFunc func() (uint64, error)

// Host is the serial message loop between the remote extension and the
// detection logic: read one frame, run one check, write one reply. Requests
// are never processed concurrently.
type Host struct {
	In    io.Reader
	Out   io.Writer
	Check CheckFunc
	Log   zerolog.Logger
}

// Run processes frames until the input is exhausted. Clean EOF ends the
// loop without error. Malformed JSON or an unknown message type gets an
// error reply and the loop continues; a truncated frame terminates the loop
// with the read error.
func (h *Host) Run() error {
	for {
		payload, err := ReadFrame(h.In)
		if errors.Is(err, io.EOF) {
			h.Log.Info().Msg("input closed, shutting down")
			return nil
		}
		if err != nil {
			return err
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.Log.Error().Err(err).Msg("malformed message")
			if err := h.writeError(fmt.Sprintf("malformed message: %v", err)); err != nil {
				return err
			}
			continue
		}

		if err := h.handle(msg); err != nil {
			return err
		}
	}
}

func (h *Host) handle(msg Message) error {
	switch msg.Type {
	case TypeCheckHover:
		index, err := h.Check()
		if err != nil {
			h.Log.Error().Err(err).Msg("hover check failed")
			return h.writeError(fmt.Sprintf("failed to check hover: %v", err))
		}
		h.Log.Info().Uint64("index", index).Msg("hover check complete")
		return h.writeReply(TypeHoverResult, HoverResultData{Index: index})
	default:
		h.Log.Error().Str("type", msg.Type).Msg("unknown message type")
		return h.writeError(fmt.Sprintf("unknown message type: %s", msg.Type))
	}
}

func (h *Host) writeReply(msgType string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s data: %w", msgType, err)
	}
	return WriteMessage(h.Out, Message{Type: msgType, Data: raw})
}

func (h *Host) writeError(message string) error {
	return h.writeReply(TypeError, ErrorData{Message: message})
}
