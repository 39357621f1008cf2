package convert_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/spacedhex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSleeper struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slept = append(s.slept, d)
	return nil
}

func (s *recordingSleeper) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slept)
}

func newTestConverter(t *testing.T, out *bytes.Buffer, sleeper *recordingSleeper, opts ...convert.Option) *convert.Converter {
	t.Helper()

	opts = append([]convert.Option{
		convert.WithDiagnostics(out),
		convert.WithSleeper(sleeper.Sleep),
	}, opts...)

	c, err := convert.New(opts...)
	require.NoError(t, err)
	return c
}

func TestConverter_Convert(t *testing.T) {
	var out bytes.Buffer
	sleeper := &recordingSleeper{}
	c := newTestConverter(t, &out, sleeper, convert.WithSeed(1234))

	input := []byte{0xFF, 0x0A}
	dst := make([]byte, spacedhex.BufferLen(len(input)))

	call, err := c.Convert(context.Background(), dst, input, 7)
	require.NoError(t, err)
	require.Equal(t, 7, call.ID)
	require.Equal(t, 5, call.N)
	require.Equal(t, "FF 0A", string(dst[:call.N]))
	require.Equal(t, byte(0), dst[call.N])

	require.GreaterOrEqual(t, call.Units, 0)
	require.Less(t, call.Units, 10000)
	require.Equal(t, time.Duration(call.Units)*time.Millisecond, call.Delay)

	if call.Delay > 0 {
		require.Equal(t, []time.Duration{call.Delay}, sleeper.slept)
	}

	expected := fmt.Sprintf("[C function 7] FF 0A --> timeout: %d\n", call.Units)
	require.Equal(t, expected, out.String())
}

func TestConverter_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	c := newTestConverter(t, &out, &recordingSleeper{}, convert.WithoutDelay())

	dst := []byte{'x'}
	call, err := c.Convert(context.Background(), dst, nil, 0)
	require.NoError(t, err)
	require.Zero(t, call.N)
	require.Equal(t, []byte{0}, dst)
	require.Equal(t, "[C function 0]  --> timeout: 0\n", out.String())
}

func TestConverter_BufferTooSmall(t *testing.T) {
	var out bytes.Buffer
	sleeper := &recordingSleeper{}
	c := newTestConverter(t, &out, sleeper, convert.WithDelay(1, 2, time.Millisecond))

	dst := bytes.Repeat([]byte{'x'}, 5)
	_, err := c.Convert(context.Background(), dst, []byte{0xAB, 0x12}, 3)
	require.ErrorIs(t, err, spacedhex.ErrBufferTooSmall)

	require.Equal(t, bytes.Repeat([]byte{'x'}, 5), dst)
	require.Zero(t, sleeper.calls())
	require.Empty(t, out.String())
}

func TestConverter_SeedDeterminism(t *testing.T) {
	var out bytes.Buffer
	sleeper := &recordingSleeper{}

	a := newTestConverter(t, &out, sleeper)
	b := newTestConverter(t, &out, sleeper)

	ctx := context.Background()

	a.Seed(5150)
	_, first, err := a.ConvertString(ctx, "hello", 1)
	require.NoError(t, err)

	a.Seed(5150)
	_, again, err := a.ConvertString(ctx, "hello", 2)
	require.NoError(t, err)
	require.Equal(t, first.Units, again.Units)

	b.Seed(5150)
	_, other, err := b.ConvertString(ctx, "different input", 3)
	require.NoError(t, err)
	require.Equal(t, first.Units, other.Units)

	c := newTestConverter(t, &out, sleeper, convert.WithSeed(5150))
	_, opt, err := c.ConvertString(ctx, "x", 4)
	require.NoError(t, err)
	require.Equal(t, first.Units, opt.Units)
}

func TestConverter_ConvertString(t *testing.T) {
	var out bytes.Buffer
	c := newTestConverter(t, &out, &recordingSleeper{}, convert.WithoutDelay(), convert.WithLabel("Go reference"))

	hex, call, err := c.ConvertString(context.Background(), "Hi!", 11)
	require.NoError(t, err)
	require.Equal(t, "48 69 21", hex)
	require.Equal(t, len(hex), call.N)
	require.Equal(t, "[Go reference 11] 48 69 21 --> timeout: 0\n", out.String())
}

func TestConverter_CustomEncoder(t *testing.T) {
	var out bytes.Buffer
	called := false
	encoder := func(dst, src []byte) (int, error) {
		called = true
		return spacedhex.Encode(dst, src)
	}
	c := newTestConverter(t, &out, &recordingSleeper{}, convert.WithoutDelay(), convert.WithEncoder(encoder))

	hex, _, err := c.ConvertString(context.Background(), "\x00", 1)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, "00", hex)
}

func TestConverter_Cancelled(t *testing.T) {
	var out bytes.Buffer
	c, err := convert.New(
		convert.WithDiagnostics(&out),
		convert.WithDelay(1, 2, time.Hour),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = c.ConvertString(ctx, "abc", 1)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestConverter_InvalidDelay(t *testing.T) {
	_, err := convert.New(convert.WithDelay(10, 5, time.Millisecond))
	require.Error(t, err)
}

func TestConverter_Concurrent(t *testing.T) {
	var out bytes.Buffer
	sleeper := &recordingSleeper{}
	c := newTestConverter(t, &out, sleeper, convert.WithSeed(1), convert.WithDelay(1, 100, time.Millisecond))

	const callers = 32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Seed(int64(i))
			hex, _, err := c.ConvertString(context.Background(), "AB", i)
			assert.NoError(t, err)
			assert.Equal(t, "41 42", hex)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, callers)
	require.Equal(t, callers, sleeper.calls())
}

func TestSleep(t *testing.T) {
	require.NoError(t, convert.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	require.ErrorIs(t, convert.Sleep(ctx, time.Minute), context.DeadlineExceeded)
}
