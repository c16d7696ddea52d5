package cycle

import (
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/require"
)

func nats(vs ...uint64) []*saferith.Nat {
	out := make([]*saferith.Nat, len(vs))
	for i, v := range vs {
		out[i] = new(saferith.Nat).SetUint64(v)
	}
	return out
}

func TestAssignment(t *testing.T) {
	sorted := nats(10, 20, 30, 40, 50)
	cases := []struct {
		own, giver, receiver uint64
	}{
		{30, 20, 40},
		{10, 50, 20}, // giver wraps
		{50, 40, 10}, // receiver wraps
	}
	for _, tc := range cases {
		edges, err := Assignment(sorted, new(saferith.Nat).SetUint64(tc.own))
		require.NoError(t, err)
		require.EqualValues(t, 1, edges.Giver.Eq(new(saferith.Nat).SetUint64(tc.giver)), "own = %d", tc.own)
		require.EqualValues(t, 1, edges.Receiver.Eq(new(saferith.Nat).SetUint64(tc.receiver)), "own = %d", tc.own)
	}
}

func TestAssignmentNotFound(t *testing.T) {
	sorted := nats(10, 20, 30)
	_, err := Assignment(sorted, new(saferith.Nat).SetUint64(25))
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAssignmentSingleKey(t *testing.T) {
	// degenerate but deterministic: a ring of one is a self-assignment
	sorted := nats(7)
	edges, err := Assignment(sorted, new(saferith.Nat).SetUint64(7))
	require.NoError(t, err)
	require.EqualValues(t, 1, edges.Giver.Eq(sorted[0]))
	require.EqualValues(t, 1, edges.Receiver.Eq(sorted[0]))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(nats(10, 20, 30)))
	require.ErrorIs(t, Check(nats(10, 20)), ErrTooFewParticipants)
	require.ErrorIs(t, Check(nats(10, 20, 20)), ErrDuplicateKey)
	require.ErrorIs(t, Check(nats(10, 30, 20)), ErrNotSorted)
}
