package voucher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCode = errors.New("invalid voucher code format")

// Codes are fixed-format PREFIX-YEAR-SEQ strings. The sequence is
// zero-padded to four digits but grows past that once the counter does.
var codePattern = regexp.MustCompile(`^[A-Z]+-\d{4}-\d{4,}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codePattern.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

// FormatCode builds a code from the issuance prefix, year and a sequence
// number drawn from the global voucher counter.
func FormatCode(prefix string, year int, seq int64) (Code, error) {
	return NewCode(fmt.Sprintf("%s-%04d-%04d", strings.ToUpper(prefix), year, seq))
}

func (c Code) String() string {
	return string(c)
}

// SigningPayload is the canonical byte representation signed at issuance and
// re-verified at validation. The field order and the "|" separator are a wire
// contract: reordering or reformatting any field invalidates every signature
// already issued.
func SigningPayload(code Code, validFrom, validUntil time.Time, stayID uuid.UUID) []byte {
	parts := []string{
		code.String(),
		validFrom.UTC().Format(time.RFC3339),
		validUntil.UTC().Format(time.RFC3339),
		stayID.String(),
	}
	return []byte(strings.Join(parts, "|"))
}
