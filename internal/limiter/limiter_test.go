package limiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    Spec
		wantErr bool
	}{
		{
			name: "requests per minute",
			spec: "100/minute",
			want: Spec{Count: 100, Per: time.Minute},
		},
		{
			name: "requests per second",
			spec: "5/second",
			want: Spec{Count: 5, Per: time.Second},
		},
		{
			name: "requests per hour",
			spec: "1000/hour",
			want: Spec{Count: 1000, Per: time.Hour},
		},
		{
			name: "requests per day",
			spec: "10/day",
			want: Spec{Count: 10, Per: 24 * time.Hour},
		},
		{
			name: "surrounding whitespace is tolerated",
			spec: " 5 / minute ",
			want: Spec{Count: 5, Per: time.Minute},
		},
		{
			name:    "missing unit",
			spec:    "100",
			wantErr: true,
		},
		{
			name:    "unknown unit",
			spec:    "100/fortnight",
			wantErr: true,
		},
		{
			name:    "zero count",
			spec:    "0/minute",
			wantErr: true,
		},
		{
			name:    "negative count",
			spec:    "-5/minute",
			wantErr: true,
		},
		{
			name:    "not a number",
			spec:    "many/minute",
			wantErr: true,
		},
		{
			name:    "empty string",
			spec:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpec)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLimiter_Allow_ExhaustsWindow(t *testing.T) {
	l := NewLimiter(Spec{Count: 5, Per: time.Minute})

	for i := 1; i <= 5; i++ {
		assert.Truef(t, l.Allow("key-a"), "request %d should be admitted", i)
	}

	assert.False(t, l.Allow("key-a"), "request 6 should be rejected")
}

func TestLimiter_Allow_KeysAreIndependent(t *testing.T) {
	l := NewLimiter(Spec{Count: 2, Per: time.Minute})

	assert.True(t, l.Allow("key-a"))
	assert.True(t, l.Allow("key-a"))
	assert.False(t, l.Allow("key-a"))

	// key-b is unaffected by key-a's usage
	assert.True(t, l.Allow("key-b"))
	assert.True(t, l.Allow("key-b"))
	assert.False(t, l.Allow("key-b"))
}

// TestLimiter_Allow_Concurrent hammers one key from many goroutines and
// checks that no more than the configured count is admitted through races.
func TestLimiter_Allow_Concurrent(t *testing.T) {
	const (
		admitted   = 10
		goroutines = 100
	)

	l := NewLimiter(Spec{Count: admitted, Per: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, admitted, allowed)
}
