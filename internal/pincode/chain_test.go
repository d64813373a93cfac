package pincode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltcart/addressd/internal/pincode"
)

func TestNewChain_RequiresProviders(t *testing.T) {
	_, err := pincode.NewChain(pincode.ChainConfig{})
	assert.ErrorIs(t, err, pincode.ErrNoProviders)
}

func TestChainLookup_FirstProviderWins(t *testing.T) {
	second := &pincode.MockProvider{
		ProviderName: "second",
		LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
			t.Fatal("second provider should not be called")
			return nil, nil
		},
	}
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			&pincode.MockProvider{
				ProviderName: "first",
				LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
					return &pincode.Info{PinCode: pin, State: "Gujarat", District: "Surat"}, nil
				},
			},
			second,
		},
	})
	require.NoError(t, err)

	info, err := chain.Lookup(context.Background(), "395001")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Surat", info.District)
}

func TestChainLookup_FallsThroughOnError(t *testing.T) {
	var order []string
	mk := func(name string, info *pincode.Info, err error) *pincode.MockProvider {
		return &pincode.MockProvider{
			ProviderName: name,
			LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
				order = append(order, name)
				return info, err
			},
		}
	}
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			mk("broken", nil, errors.New("connection refused")),
			mk("empty", nil, nil), // unrecognized response body
			mk("working", &pincode.Info{PinCode: "380015", State: "Gujarat"}, nil),
		},
	})
	require.NoError(t, err)

	info, err := chain.Lookup(context.Background(), "380015")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Gujarat", info.State)
	assert.Equal(t, []string{"broken", "empty", "working"}, order)
}

// A malformed PIN is rejected before any provider sees it.
func TestChainLookup_RejectsMalformedPin(t *testing.T) {
	called := false
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			&pincode.MockProvider{
				LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
					called = true
					return nil, nil
				},
			},
		},
	})
	require.NoError(t, err)

	for _, pin := range []string{"", "38001", "3800151", "080015", "38OO15"} {
		info, err := chain.Lookup(context.Background(), pin)
		assert.Nil(t, info, "pin %q", pin)
		assert.ErrorIs(t, err, pincode.ErrInvalidPin, "pin %q", pin)
	}
	assert.False(t, called)
}

func TestChainLookup_Exhaustion(t *testing.T) {
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			pincode.NewMockProvider("a"),
			pincode.NewMockProvider("b"),
		},
	})
	require.NoError(t, err)

	info, err := chain.Lookup(context.Background(), "380015")

	assert.Nil(t, info)
	assert.ErrorIs(t, err, pincode.ErrAllProvidersUnavailable)
}

func TestChainLookup_PerProviderTimeout(t *testing.T) {
	slow := &pincode.MockProvider{
		ProviderName: "slow",
		LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			slow,
			&pincode.MockProvider{
				ProviderName: "fast",
				LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
					return &pincode.Info{PinCode: pin, State: "Gujarat"}, nil
				},
			},
		},
		Timeout: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	info, err := chain.Lookup(context.Background(), "395001")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "Gujarat", info.State)
}

// A cancelled caller context stops the walk instead of burning through the
// remaining providers.
func TestChainLookup_CallerCancellation(t *testing.T) {
	calls := 0
	ctx, cancel := context.WithCancel(context.Background())
	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: []pincode.Provider{
			&pincode.MockProvider{
				ProviderName: "first",
				LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
					calls++
					cancel()
					return nil, ctx.Err()
				},
			},
			&pincode.MockProvider{
				ProviderName: "second",
				LookupFunc: func(ctx context.Context, pin string) (*pincode.Info, error) {
					calls++
					return nil, nil
				},
			},
		},
	})
	require.NoError(t, err)

	_, err = chain.Lookup(ctx, "395001")

	assert.ErrorIs(t, err, pincode.ErrAllProvidersUnavailable)
	assert.Equal(t, 1, calls)
}
