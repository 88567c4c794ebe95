package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoxelTask/VoxSwapSDK/media"
)

var (
	contentBytes  = []byte("the actual media content")
	metadataBytes = []byte(`{"name":"vox item","description":"d","mimeType":"text/plain"}`)
)

// newVerifyServer 启动一个 https 测试服务，按路径返回固定内容
// handlers 中未注册的路径返回 404
func newVerifyServer(t *testing.T, handlers map[string]http.HandlerFunc) (*httptest.Server, *Verifier) {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return srv, New(WithHTTPClient(srv.Client()))
}

func serveBytes(body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}
}

func TestFetchAndVerify(t *testing.T) {
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/content": serveBytes(contentBytes),
	})

	ok, err := v.FetchAndVerify(context.Background(), srv.URL+"/content", DigestHash(contentBytes), time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// 拉取成功但内容与声明哈希不一致: 返回 false，而不是错误
	ok, err = v.FetchAndVerify(context.Background(), srv.URL+"/content", DigestHash([]byte("other")), time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFetchAndVerifyInsecureURI(t *testing.T) {
	v := New()
	_, err := v.FetchAndVerify(context.Background(), "http://example.com/content", DigestHash(contentBytes), time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, media.ErrInsecureURI))
}

func TestFetchAndVerifyNon2xx(t *testing.T) {
	srv, v := newVerifyServer(t, nil)

	_, err := v.FetchAndVerify(context.Background(), srv.URL+"/missing", DigestHash(contentBytes), time.Second)
	require.Error(t, err)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestFetchAndVerifyTimeout(t *testing.T) {
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/slow": func(w http.ResponseWriter, r *http.Request) {
			// 挂起直到客户端超时放弃
			<-r.Context().Done()
		},
	})

	_, err := v.FetchAndVerify(context.Background(), srv.URL+"/slow", DigestHash(contentBytes), 100*time.Millisecond)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func newTestMediaData(t *testing.T, srv *httptest.Server) media.MediaData {
	t.Helper()
	data, err := media.NewItemData(
		srv.URL+"/content",
		srv.URL+"/metadata",
		DigestHash(contentBytes),
		DigestHash(metadataBytes),
	)
	require.NoError(t, err)
	return data
}

func TestVerifyMediaData(t *testing.T) {
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/content":  serveBytes(contentBytes),
		"/metadata": serveBytes(metadataBytes),
	})

	verified, err := v.VerifyMediaData(context.Background(), newTestMediaData(t, srv), time.Second)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestVerifyMediaDataMismatch(t *testing.T) {
	// 元数据 URI 返回了错误的字节: 整体结果为 false，但不是错误
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/content":  serveBytes(contentBytes),
		"/metadata": serveBytes([]byte("tampered metadata")),
	})

	verified, err := v.VerifyMediaData(context.Background(), newTestMediaData(t, srv), time.Second)
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestVerifyMediaDataFetchFailure(t *testing.T) {
	// 内容 URI 在超时内不响应: 整体失败并传播 FetchError，而不是返回 false
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/content": func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		},
		"/metadata": serveBytes(metadataBytes),
	})

	_, err := v.VerifyMediaData(context.Background(), newTestMediaData(t, srv), 100*time.Millisecond)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
}

func TestVerifyMediaDataExtraPair(t *testing.T) {
	geometryBytes := []byte("land geometry payload")
	srv, v := newVerifyServer(t, map[string]http.HandlerFunc{
		"/content":  serveBytes(contentBytes),
		"/metadata": serveBytes(metadataBytes),
		"/geometry": serveBytes(geometryBytes),
	})

	data, err := media.NewMediaData(media.KindLand,
		srv.URL+"/content", srv.URL+"/metadata",
		DigestHash(contentBytes), DigestHash(metadataBytes),
		media.VerifyPair{URI: srv.URL + "/geometry", Hash: DigestHash(geometryBytes)})
	require.NoError(t, err)

	verified, err := v.VerifyMediaData(context.Background(), data, time.Second)
	require.NoError(t, err)
	assert.True(t, verified)

	// 附加对不一致同样拉低整体结果
	data.Extra[0].Hash = DigestHash([]byte("wrong"))
	verified, err = v.VerifyMediaData(context.Background(), data, time.Second)
	require.NoError(t, err)
	assert.False(t, verified)
}
