package relay

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// Message types exchanged with the remote extension.
const (
	TypeCheckHover  = "check_hover"
	TypeHoverResult = "hover_result"
	TypeError       = "error"
)

// MaxFrameLen caps inbound frames at the native-messaging limit.
const MaxFrameLen = 1 << 20

// Message is one framed protocol message: a type tag plus a free-form JSON
// data object. On the wire it is a 4-byte little-endian length prefix
// followed by that many bytes of UTF-8 JSON.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// HoverResultData carries the detected group ordinal.
type HoverResultData struct {
	Index uint64 `json:"index"`
}

// ErrorData carries a diagnostic message.
type ErrorData struct {
	Message string `json:"message"`
}

// ReadFrame reads one length-prefixed frame. Clean end of input while
// awaiting a new prefix returns io.EOF; a prefix or payload cut short
// mid-frame is a read failure.
func ReadFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame length: %w", err)
	}
	length := binary.LittleEndian.Uint32(prefix[:])
	if length > MaxFrameLen {
		return nil, fmt.Errorf("frame length %d exceeds limit %d", length, MaxFrameLen)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read frame payload (%d bytes): %w", length, err)
	}
	return payload, nil
}

// WriteMessage frames and writes one message.
func WriteMessage(w io.Writer, m Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write frame payload: %w", err)
	}
	return nil
}
