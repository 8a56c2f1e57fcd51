package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fixedCounter struct {
	n   int
	err error
}

func (c fixedCounter) Count(context.Context) (int, error) { return c.n, c.err }

func TestRefreshTotals(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	UsersTotal.Set(0)
	SpeechesTotal.Set(-1)
	RefreshTotals(ctx, time.Hour, fixedCounter{n: 3}, fixedCounter{err: errors.New("db down")})

	if got := testutil.ToFloat64(UsersTotal); got != 3 {
		t.Errorf("UsersTotal = %v, want 3", got)
	}
	if got := testutil.ToFloat64(SpeechesTotal); got != -1 {
		t.Errorf("SpeechesTotal = %v, want unchanged -1", got)
	}
}
