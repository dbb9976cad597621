package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrLookupFailed means the ledger could not answer for this reference
	// right now: unreachable, timed out, or the transaction has not
	// propagated/confirmed yet. The same reference may be retried.
	ErrLookupFailed = fmt.Errorf("ledger lookup failed")

	// ErrPaymentRejected means the ledger answered and the reference does
	// not prove the required transfer. Retrying the same reference is
	// pointless; the caller must pay again.
	ErrPaymentRejected = fmt.Errorf("payment rejected")
)

// Assertion is the invariant a transaction must satisfy before a submission
// is accepted: a transfer from the expected source to the expected
// destination, optionally of at least MinimumLamports.
type Assertion struct {
	ExpectedSource      string
	ExpectedDestination string
	MinimumLamports     uint64
}

type Verifier struct {
	client  Client
	timeout time.Duration
	logger  *zap.Logger
	observe func(outcome string)
}

func NewVerifier(client Client, timeout time.Duration, logger *zap.Logger, observe func(outcome string)) *Verifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if observe == nil {
		observe = func(string) {}
	}
	return &Verifier{client: client, timeout: timeout, logger: logger, observe: observe}
}

// Verify re-derives the payment claim for reference from the ledger. It
// returns nil on a match, ErrPaymentRejected on a permanent mismatch, and
// ErrLookupFailed when the ledger could not be consulted. Verification is
// idempotent: a reference that matched once matches again.
func (v *Verifier) Verify(ctx context.Context, reference string, a Assertion) error {
	if !validReference(reference) {
		v.observe("rejected")
		return fmt.Errorf("%w: malformed transaction reference", ErrPaymentRejected)
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	tx, err := v.client.GetTransaction(ctx, reference)
	if err != nil {
		v.observe("lookup_failed")
		v.logger.Warn("ledger unavailable", zap.String("reference", reference), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	if !tx.Found || !tx.Confirmed {
		v.observe("unconfirmed")
		return fmt.Errorf("%w: transaction not found or unconfirmed", ErrLookupFailed)
	}

	for _, tr := range tx.Transfers {
		if tr.Source != a.ExpectedSource || tr.Destination != a.ExpectedDestination {
			continue
		}
		if a.MinimumLamports > 0 && tr.Lamports < a.MinimumLamports {
			continue
		}
		v.observe("matched")
		return nil
	}

	v.observe("rejected")
	return fmt.Errorf("%w: no transfer from %s to %s", ErrPaymentRejected, a.ExpectedSource, a.ExpectedDestination)
}

// validReference accepts base58-looking references of plausible signature
// length. Anything else is structurally invalid and permanently rejected.
func validReference(ref string) bool {
	if len(ref) < 32 || len(ref) > 128 {
		return false
	}
	for _, r := range ref {
		switch {
		case r >= '1' && r <= '9':
		case r >= 'A' && r <= 'H':
		case r >= 'J' && r <= 'N':
		case r >= 'P' && r <= 'Z':
		case r >= 'a' && r <= 'k':
		case r >= 'm' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
