package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadSignature is returned for any notification whose signature header
// cannot be verified. Such payloads must never be trusted.
var ErrBadSignature = errors.New("payments: invalid webhook signature")

// DefaultSignatureTolerance bounds how old a signed notification may be,
// limiting replay of captured deliveries.
const DefaultSignatureTolerance = 5 * time.Minute

// VerifySignature checks a `t=<unix>,v1=<hex hmac>` signature header against
// the raw payload. The signed message is "<t>.<payload>" with HMAC-SHA256
// under the shared webhook secret.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	ts, sigs, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		issued := time.Unix(ts, 0)
		if now.Sub(issued) > tolerance || issued.Sub(now) > tolerance {
			return fmt.Errorf("%w: timestamp outside tolerance", ErrBadSignature)
		}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	want := mac.Sum(nil)

	for _, sig := range sigs {
		got, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(got, want) {
			return nil
		}
	}
	return ErrBadSignature
}

// Sign produces the signature header for a payload. Used by tests and local
// tooling to fabricate valid deliveries.
func Sign(payload []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func parseSignatureHeader(header string) (int64, []string, error) {
	var ts int64 = -1
	var sigs []string

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			v, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: malformed timestamp", ErrBadSignature)
			}
			ts = v
		case "v1":
			sigs = append(sigs, value)
		}
	}

	if ts < 0 || len(sigs) == 0 {
		return 0, nil, fmt.Errorf("%w: missing timestamp or signature", ErrBadSignature)
	}
	return ts, sigs, nil
}
