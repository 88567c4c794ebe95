package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/mr"
	"go.uber.org/zap"

	"github.com/VoxelTask/VoxSwapSDK/logger/xzap"
	"github.com/VoxelTask/VoxSwapSDK/media"
)

// DefaultTimeout 单次内容拉取的默认超时
const DefaultTimeout = 10 * time.Second

// FetchError 网络拉取失败 (传输错误、超时或非 2xx 状态码)
// 与哈希不匹配是两种不同的结果: 不匹配返回 false，拉取失败向上传播错误，
// 调用方需要区分"确定不一致"与"无法确定"
type FetchError struct {
	URI        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URI, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: status code %d", e.URI, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Verifier 内容验证器
// 拉取声明 URI 指向的内容并与链上承诺的哈希比对
// 各次调用之间不共享可变状态，本层不做重试与限流
type Verifier struct {
	client *http.Client
}

type Option func(*Verifier)

// WithHTTPClient 指定自定义的 HTTP 客户端 (代理、连接池等)
func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		v.client = client
	}
}

// New 构造内容验证器
func New(opts ...Option) *Verifier {
	v := &Verifier{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// FetchAndVerify 拉取 uri 的内容并与声明哈希比对
// 返回值:
//   - (true, nil)  内容摘要与声明哈希一致
//   - (false, nil) 拉取成功但摘要不一致
//   - (false, err) 拉取失败或超时，err 为 *FetchError
//
// 取消只能通过 timeout 表达，请求一旦发出没有单独的取消令牌
func (v *Verifier) FetchAndVerify(ctx context.Context, uri string, expected common.Hash, timeout time.Duration) (bool, error) {
	if err := media.ValidateURI(uri); err != nil {
		return false, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return false, &FetchError{URI: uri, Err: err}
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, &FetchError{URI: uri, Err: err}
	}
	defer resp.Body.Close()

	// 仅接受 2xx，其余状态码一律视为拉取失败
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, &FetchError{URI: uri, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &FetchError{URI: uri, Err: err}
	}

	// 哈希均规范化为原始 32 字节后比较，十六进制大小写不影响结果
	actual := DigestHash(body)
	if actual != expected {
		xzap.WithContext(ctx).Warn("content hash mismatch",
			zap.String("uri", uri),
			zap.String("expected", expected.Hex()),
			zap.String("actual", actual.Hex()))
		return false, nil
	}
	return true, nil
}

// VerifyMediaData 验证一份资产数据的全部 (URI, 哈希) 对
// (内容, 元数据以及类型附加对)并发拉取，全部一致才返回 true
// 任何一条拉取失败时整体失败并传播错误，而不是悄悄当作 false
// 这里的并发只是降低时延的优化，各条目的完成顺序无关紧要
func (v *Verifier) VerifyMediaData(ctx context.Context, data media.MediaData, timeout time.Duration) (bool, error) {
	if err := data.Validate(); err != nil {
		return false, err
	}

	verifyID := uuid.NewString()
	pairs := data.Pairs()
	results := make([]bool, len(pairs))

	fns := make([]func() error, len(pairs))
	for i := range pairs {
		i, pair := i, pairs[i]
		fns[i] = func() error {
			ok, err := v.FetchAndVerify(ctx, pair.URI, pair.Hash, timeout)
			if err != nil {
				return errors.Wrapf(err, "failed on verify %s media", data.Kind)
			}
			results[i] = ok
			return nil
		}
	}

	if err := mr.Finish(fns...); err != nil {
		xzap.WithContext(ctx).Error("media verification failed",
			zap.String("verify_id", verifyID), zap.String("kind", string(data.Kind)), zap.Error(err))
		return false, err
	}

	verified := true
	for _, ok := range results {
		verified = verified && ok
	}

	xzap.WithContext(ctx).Info("media verification finished",
		zap.String("verify_id", verifyID),
		zap.String("kind", string(data.Kind)),
		zap.Bool("verified", verified))

	return verified, nil
}
