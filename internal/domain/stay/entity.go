package stay

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStayWindow = errors.New("check-in must be before check-out")

// Stay is the read-only snapshot of a hotel stay used to bound voucher
// validity windows at issuance.
type Stay struct {
	id       uuid.UUID
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(id uuid.UUID, checkIn, checkOut time.Time) (*Stay, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidStayWindow
	}
	return &Stay{id: id, checkIn: checkIn, checkOut: checkOut}, nil
}

func (s *Stay) ID() uuid.UUID       { return s.id }
func (s *Stay) CheckIn() time.Time  { return s.checkIn }
func (s *Stay) CheckOut() time.Time { return s.checkOut }

// Covers reports whether the given validity window sits inside the stay.
func (s *Stay) Covers(from, until time.Time) bool {
	return !from.Before(s.checkIn) && !until.After(s.checkOut)
}
