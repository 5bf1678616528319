package reactor

import (
	"errors"

	"reactor-sim/internal/core"
)

var (
	// ErrSlotOutOfRange is returned for slot indices outside [0, SlotCount).
	ErrSlotOutOfRange = core.ErrSlotOutOfRange
	// ErrUnknownKind is returned when a kind has no catalog entry.
	ErrUnknownKind = errors.New("unknown component kind")
	// ErrNegativeHeat is returned when hull heat would be assigned below zero.
	ErrNegativeHeat = errors.New("negative hull heat")
	// ErrHeatOverflow is returned when hull heat accumulation would overflow.
	ErrHeatOverflow = errors.New("hull heat overflow")
	// ErrDestroyed is returned by every operation after Destroy.
	ErrDestroyed = errors.New("reactor destroyed")
)
