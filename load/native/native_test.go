package native

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mkeeler/hexload/load/calls"
	"github.com/mkeeler/hexload/load/config"
	"github.com/stretchr/testify/require"
)

func TestNativeConfig_Normalize(t *testing.T) {
	type testcase struct {
		config    UserConfig
		expectErr bool
		check     func(t *testing.T, c UserConfig)
	}

	testcases := map[string]testcase{
		"defaults match the native library": {
			config: UserConfig{},
			check: func(t *testing.T, c UserConfig) {
				require.Equal(t, "C function", c.Label)
				require.Equal(t, 0, c.MinDelay)
				require.Equal(t, 10000, c.MaxDelay)
				require.Equal(t, time.Millisecond, c.Unit())
			},
		},
		"custom label and range are kept": {
			config: UserConfig{
				UserConfig: calls.UserConfig{MinDelay: 2, MaxDelay: 4, DelayUnit: "10ms"},
				Label:      "native",
			},
			check: func(t *testing.T, c UserConfig) {
				require.Equal(t, "native", c.Label)
				require.Equal(t, 2, c.MinDelay)
				require.Equal(t, 10*time.Millisecond, c.Unit())
			},
		},
		"inverted range is rejected": {
			config: UserConfig{
				UserConfig: calls.UserConfig{MinDelay: 4, MaxDelay: 2},
			},
			expectErr: true,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			if tc.expectErr {
				require.Error(t, tc.config.Normalize())
				return
			}
			require.NoError(t, tc.config.Normalize())
			tc.check(t, tc.config)
		})
	}
}

func TestLoadGenerator_Run(t *testing.T) {
	var out bytes.Buffer

	conf := UserConfig{UserConfig: calls.UserConfig{Runs: 4, Concurrency: 2, NoDelay: true}}
	require.NoError(t, conf.Normalize())

	lg := NewLoadGenerator(Config{
		UserConfig: conf,
		GeneratorConfig: config.GeneratorConfig{
			Seed:        9,
			Input:       []byte{0xAB, 0x12, 0x00},
			Diagnostics: config.SyncWriter(&out),
			Logger:      hclog.NewNullLogger(),
		},
	})

	ctx := context.Background()
	require.NoError(t, lg.Initialize(ctx))
	require.NoError(t, lg.Run(ctx))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "[C function "), line)
		require.True(t, strings.HasSuffix(line, "] AB 12 00 --> timeout: 0"), line)
	}
}
