package vallox

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Commands understood by the unit's websocket endpoint.
const (
	commandWrite      = 249
	commandReadTables = 246
	commandAck        = 245
)

// The data table starts at this register address; cell index = address - tableBase.
const tableBase = 4096

// packFrame builds a request frame: a word counting everything that follows,
// the body, and an arithmetic checksum over all preceding words. The whole
// frame is serialized little-endian.
func packFrame(body []uint16) []byte {
	words := make([]uint16, 0, len(body)+2)
	words = append(words, uint16(len(body)+1))
	words = append(words, body...)

	var checksum uint16
	for _, word := range words {
		checksum += word
	}
	words = append(words, checksum)

	packed := make([]byte, 2*len(words))
	for i, word := range words {
		binary.LittleEndian.PutUint16(packed[2*i:], word)
	}

	return packed
}

// unpackFrame validates a response frame and returns its body.
func unpackFrame(packed []byte) ([]uint16, error) {
	if len(packed) < 6 || len(packed)%2 != 0 {
		return nil, fmt.Errorf("malformed frame of %v bytes", len(packed))
	}

	words := make([]uint16, len(packed)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(packed[2*i:])
	}

	if int(words[0]) != len(words)-1 {
		return nil, fmt.Errorf("frame length word %v does not match %v words", words[0], len(words)-1)
	}

	var checksum uint16
	for _, word := range words[:len(words)-1] {
		checksum += word
	}

	if checksum != words[len(words)-1] {
		return nil, errors.New("frame checksum mismatch")
	}

	return words[1 : len(words)-1], nil
}
