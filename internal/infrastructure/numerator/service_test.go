package numerator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corenumerator "procura/internal/core/numerator"
)

type fakeRow struct {
	val int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if p, ok := dest[0].(*int64); ok {
			*p = r.val
		}
	}
	return nil
}

// fakeQuerier tracks sequence values per key in memory, mimicking the
// sys_sequences upsert semantics.
type fakeQuerier struct {
	seq  map[string]int64
	keys []string
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{seq: make(map[string]int64)}
}

func (q *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	key := args[0].(string)
	q.keys = append(q.keys, key)

	inc := int64(1)
	if len(args) > 1 {
		inc = args[1].(int64)
	}
	q.seq[key] += inc
	return fakeRow{val: q.seq[key]}
}

func TestGetNextNumber_Strict(t *testing.T) {
	q := newFakeQuerier()
	svc := New(q)
	period := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cfg := corenumerator.DefaultConfig("PO")

	n1, err := svc.GetNextNumber(context.Background(), cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260831-0001", n1)

	n2, err := svc.GetNextNumber(context.Background(), cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260831-0002", n2)
}

func TestGetNextNumber_DailyReset(t *testing.T) {
	q := newFakeQuerier()
	svc := New(q)
	cfg := corenumerator.DefaultConfig("GR")

	day1 := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 0, 1, 0, 0, time.UTC)

	n1, err := svc.GetNextNumber(context.Background(), cfg, nil, day1)
	require.NoError(t, err)
	assert.Equal(t, "GR-20260830-0001", n1)

	// new day means new key, counter restarts at 1
	n2, err := svc.GetNextNumber(context.Background(), cfg, nil, day2)
	require.NoError(t, err)
	assert.Equal(t, "GR-20260831-0001", n2)
}

func TestGetNextNumber_NeverReset(t *testing.T) {
	q := newFakeQuerier()
	svc := New(q)
	cfg := corenumerator.CodeConfig("ITM")
	period := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	n1, err := svc.GetNextNumber(context.Background(), cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "ITM-00001", n1)

	// same key regardless of period
	later := period.AddDate(1, 2, 3)
	n2, err := svc.GetNextNumber(context.Background(), cfg, nil, later)
	require.NoError(t, err)
	assert.Equal(t, "ITM-00002", n2)
	assert.Equal(t, []string{"ITM", "ITM"}, q.keys)
}

func TestGetNextNumber_Cached(t *testing.T) {
	q := newFakeQuerier()
	svc := New(q)
	cfg := corenumerator.DefaultConfig("VP")
	period := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	opts := &corenumerator.Options{
		Strategy:  corenumerator.StrategyCached,
		RangeSize: 10,
	}

	for i := 1; i <= 12; i++ {
		n, err := svc.GetNextNumber(context.Background(), cfg, opts, period)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("VP-20260831-%04d", i), n)
	}

	// 12 numbers from ranges of 10 means exactly two DB round trips
	assert.Len(t, q.keys, 2)
}

func TestGetNextNumber_CodeOptions(t *testing.T) {
	q := newFakeQuerier()
	svc := New(q)
	cfg := corenumerator.CodeConfig("VEN")
	period := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		n, err := svc.GetNextNumber(context.Background(), cfg, corenumerator.CodeOptions(), period)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("VEN-%05d", i), n)
	}

	// one reserved range of 50 covers all three codes
	assert.Equal(t, []string{"VEN"}, q.keys)
}
