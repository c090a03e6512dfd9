// ABOUTME: ConsoleReader reduces a Windows console event queue to single characters
// ABOUTME: Platform-neutral so the batch scan can be tested on any OS with a fake queue

package reader

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// BatchSize is the maximum number of console records consumed per Read.
const BatchSize = 128

// Console event types (INPUT_RECORD.EventType).
const (
	KeyEvent              uint16 = 0x0001
	MouseEvent            uint16 = 0x0002
	WindowBufferSizeEvent uint16 = 0x0004
	MenuEvent             uint16 = 0x0008
	FocusEvent            uint16 = 0x0010
)

// InputRecord mirrors the Windows INPUT_RECORD layout: an event tag
// followed by a 16-byte union.
type InputRecord struct {
	EventType uint16
	_         [2]byte
	Event     [16]byte
}

// KeyEventRecord is the decoded KEY_EVENT_RECORD payload.
type KeyEventRecord struct {
	KeyDown         bool
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	UnicodeChar     uint16
	ControlKeyState uint32
}

// KeyEvent decodes the key payload. ok is false for non-key records.
func (r InputRecord) KeyEvent() (k KeyEventRecord, ok bool) {
	if r.EventType != KeyEvent {
		return KeyEventRecord{}, false
	}
	e := r.Event[:]
	return KeyEventRecord{
		KeyDown:         binary.LittleEndian.Uint32(e[0:4]) != 0,
		RepeatCount:     binary.LittleEndian.Uint16(e[4:6]),
		VirtualKeyCode:  binary.LittleEndian.Uint16(e[6:8]),
		VirtualScanCode: binary.LittleEndian.Uint16(e[8:10]),
		UnicodeChar:     binary.LittleEndian.Uint16(e[10:12]),
		ControlKeyState: binary.LittleEndian.Uint32(e[12:16]),
	}, true
}

// NewKeyRecord builds a key-event record. It exists for fakes and tests
// that script console input.
func NewKeyRecord(k KeyEventRecord) InputRecord {
	r := InputRecord{EventType: KeyEvent}
	var down uint32
	if k.KeyDown {
		down = 1
	}
	binary.LittleEndian.PutUint32(r.Event[0:4], down)
	binary.LittleEndian.PutUint16(r.Event[4:6], k.RepeatCount)
	binary.LittleEndian.PutUint16(r.Event[6:8], k.VirtualKeyCode)
	binary.LittleEndian.PutUint16(r.Event[8:10], k.VirtualScanCode)
	binary.LittleEndian.PutUint16(r.Event[10:12], k.UnicodeChar)
	binary.LittleEndian.PutUint32(r.Event[12:16], k.ControlKeyState)
	return r
}

// EventQueue is the console input API consumed by ConsoleReader.
type EventQueue interface {
	// Pending returns the number of unread records.
	Pending() (uint32, error)
	// ReadEvents removes up to len(buf) records from the queue.
	ReadEvents(buf []InputRecord) (int, error)
}

// ConsoleReader implements Reader over an EventQueue.
//
// Each Read consumes one batch and surfaces only the most recent key-down
// character in it. Every other record in the batch (mouse, focus, resize,
// key-up, older keystrokes) is dropped and not seen again; callers that need
// every keystroke must poll often enough that batches hold a single key.
type ConsoleReader struct {
	q   EventQueue
	buf [BatchSize]InputRecord
}

// NewConsoleReader returns a ConsoleReader over q.
func NewConsoleReader(q EventQueue) *ConsoleReader {
	return &ConsoleReader{q: q}
}

// Read returns the UTF-8 encoding of the newest typed character, or nil.
func (r *ConsoleReader) Read() ([]byte, error) {
	pending, err := r.q.Pending()
	if err != nil {
		return nil, &ReadError{Op: "count console input events", Err: err}
	}
	if pending == 0 {
		return nil, nil
	}

	n, err := r.q.ReadEvents(r.buf[:])
	if err != nil {
		return nil, &ReadError{Op: "read console input", Err: err}
	}
	n = min(n, len(r.buf))
	return lastTypedChar(r.buf[:n]), nil
}

// Close is a no-op; the console handle belongs to the process.
func (r *ConsoleReader) Close() error {
	return nil
}

// lastTypedChar scans records newest-first for a key-down with a character.
func lastTypedChar(records []InputRecord) []byte {
	for i := len(records) - 1; i >= 0; i-- {
		k, ok := records[i].KeyEvent()
		if !ok || !k.KeyDown || k.UnicodeChar == 0 {
			continue
		}
		return utf8.AppendRune(nil, decodeUnit(k.UnicodeChar))
	}
	return nil
}

// decodeUnit maps a single UTF-16 code unit to a rune; a lone surrogate
// half cannot be decoded on its own and becomes U+FFFD.
func decodeUnit(u uint16) rune {
	r := rune(u)
	if utf16.IsSurrogate(r) {
		return utf8.RuneError
	}
	return r
}
