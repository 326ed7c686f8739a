package discovery

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/pkg/logger"
	"github.com/orb3-protocol/l2beat/internal/pkg/utils"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lumen.yml"), []byte(fixtureYAML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(fixtureYAML), 0o600))

	source := NewFileSource(dir, logger.NewNopAdapter())

	snapshot, err := source.Load(context.Background(), "lumen")
	require.NoError(t, err)
	require.Equal(t, "lumen", snapshot.Project)
	require.Equal(t, uint64(19500000), snapshot.BlockNumber)
	require.Contains(t, snapshot.Contracts, "L2OutputOracle")

	_, err = source.Load(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = source.Load(context.Background(), "other")
	require.ErrorIs(t, err, entity.ErrSchemaViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.Load(ctx, "lumen")
	require.ErrorIs(t, err, context.Canceled)
}

func newInmemorySource(t *testing.T, handler fasthttp.RequestHandler) *HTTPSource {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	t.Cleanup(func() { _ = ln.Close() })
	go func() { _ = fasthttp.Serve(ln, handler) }()

	source := NewHTTPSource("http://discovery.local/", time.Second, 0, 0, logger.NewNopAdapter())
	source.client = &fasthttp.Client{
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}
	return source
}

func TestHTTPSource(t *testing.T) {
	source := newInmemorySource(t, func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/lumen.yaml":
			ctx.SetContentType("application/yaml")
			ctx.SetBodyString(fixtureYAML)
		case "/jsonchain.yaml":
			ctx.SetContentType("application/json")
			ctx.SetBodyString(`{"blockNumber":7,"contracts":{"SystemConfig":{"address":"0x3333333333333333333333333333333333333333","values":{"gasLimit":30000000}}}}`)
		case "/broken.yaml":
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		case "/slow.yaml":
			time.Sleep(500 * time.Millisecond)
			ctx.SetBodyString(fixtureYAML)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		snapshot, err := source.Load(context.Background(), "lumen")
		require.NoError(t, err)
		require.Equal(t, "lumen", snapshot.Project)
		require.ElementsMatch(t, []string{
			"L2OutputOracle", "OptimismPortal", "SystemConfig", "L1CrossDomainMessenger",
			"L1StandardBridge", "ProxyAdmin", "LumenMultisig",
		}, utils.SortedKeys(snapshot.Contracts))
		require.Equal(t, []string{"0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"}, snapshot.Roles["UnsafeBlockSigner"])
	})

	t.Run("json", func(t *testing.T) {
		snapshot, err := source.Load(context.Background(), "jsonchain")
		require.NoError(t, err)
		require.Equal(t, "jsonchain", snapshot.Project)

		gas, err := NewAccessor(snapshot, logger.NewNopAdapter()).ContractUint64("SystemConfig", "gasLimit")
		require.NoError(t, err)
		require.Equal(t, uint64(30000000), gas)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := source.Load(context.Background(), "nope")
		require.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := source.Load(context.Background(), "broken")
		require.Error(t, err)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, err := source.Load(ctx, "lumen")
		require.NoError(t, err)
	})

	t.Run("context deadline bounds the request", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := source.Load(ctx, "slow")
		require.Error(t, err)
		require.Less(t, time.Since(start), 400*time.Millisecond)
	})
}
