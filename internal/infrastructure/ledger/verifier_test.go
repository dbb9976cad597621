package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRef         = "5VfYmGBn2RjsDCW9qkeyb41U2TF5GdiGqkxDvrBAAvpYLtVYrtNSHv75rkU6eVcyZyvDPQbLtAQqkHQSKXXpgj1x"
	testUserWallet  = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	testAdminWallet = "12c9CS6jPkKTGhAb1Wi7DQsnpJn9PX2uu54n1EgwzPvV"
)

type stubClient struct {
	tx    Transaction
	err   error
	calls int
}

func (s *stubClient) GetTransaction(_ context.Context, _ string) (Transaction, error) {
	s.calls++
	return s.tx, s.err
}

func matchedTx() Transaction {
	return Transaction{
		Found:     true,
		Confirmed: true,
		Transfers: []TransferInstruction{
			{Source: testUserWallet, Destination: testAdminWallet, Lamports: 100_000_000},
		},
	}
}

func newTestVerifier(c Client) *Verifier {
	return NewVerifier(c, time.Second, nil, nil)
}

func TestVerifyMatched(t *testing.T) {
	v := newTestVerifier(&stubClient{tx: matchedTx()})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	require.NoError(t, err)
}

func TestVerifyIdempotent(t *testing.T) {
	client := &stubClient{tx: matchedTx()}
	v := newTestVerifier(client)
	a := Assertion{ExpectedSource: testUserWallet, ExpectedDestination: testAdminWallet}

	require.NoError(t, v.Verify(context.Background(), testRef, a))
	require.NoError(t, v.Verify(context.Background(), testRef, a))
	assert.Equal(t, 2, client.calls)
}

func TestVerifyWrongDestination(t *testing.T) {
	tx := matchedTx()
	tx.Transfers[0].Destination = testUserWallet
	v := newTestVerifier(&stubClient{tx: tx})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestVerifyWrongSource(t *testing.T) {
	tx := matchedTx()
	tx.Transfers[0].Source = testAdminWallet
	v := newTestVerifier(&stubClient{tx: tx})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestVerifyNotFoundIsRetryable(t *testing.T) {
	v := newTestVerifier(&stubClient{tx: Transaction{Found: false}})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.NotErrorIs(t, err, ErrPaymentRejected)
}

func TestVerifyUnconfirmedIsRetryable(t *testing.T) {
	tx := matchedTx()
	tx.Confirmed = false
	v := newTestVerifier(&stubClient{tx: tx})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestVerifyTransportErrorIsRetryable(t *testing.T) {
	v := newTestVerifier(&stubClient{err: errors.New("connection refused")})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestVerifyMalformedReference(t *testing.T) {
	client := &stubClient{tx: matchedTx()}
	v := newTestVerifier(client)

	err := v.Verify(context.Background(), "not-base58!", Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.ErrorIs(t, err, ErrPaymentRejected)
	assert.Equal(t, 0, client.calls, "malformed reference must not reach the ledger")
}

func TestVerifyMinimumAmount(t *testing.T) {
	tx := matchedTx()
	tx.Transfers[0].Lamports = 500
	v := newTestVerifier(&stubClient{tx: tx})

	a := Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
		MinimumLamports:     1_000,
	}
	assert.ErrorIs(t, v.Verify(context.Background(), testRef, a), ErrPaymentRejected)

	a.MinimumLamports = 500
	assert.NoError(t, v.Verify(context.Background(), testRef, a))

	a.MinimumLamports = 0
	assert.NoError(t, v.Verify(context.Background(), testRef, a))
}

func TestVerifySecondInstructionMatches(t *testing.T) {
	tx := Transaction{
		Found:     true,
		Confirmed: true,
		Transfers: []TransferInstruction{
			{Source: testAdminWallet, Destination: testUserWallet, Lamports: 1},
			{Source: testUserWallet, Destination: testAdminWallet, Lamports: 2_000_000},
		},
	}
	v := newTestVerifier(&stubClient{tx: tx})

	err := v.Verify(context.Background(), testRef, Assertion{
		ExpectedSource:      testUserWallet,
		ExpectedDestination: testAdminWallet,
	})
	assert.NoError(t, err)
}
