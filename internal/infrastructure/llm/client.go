package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seo-article-api/pkg/metrics"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// FailReason 远程补全失败的归类原因。编排层不按原因区分回退策略，
// 只用于日志与指标。
type FailReason string

const (
	ReasonMissingCredential FailReason = "missing_credential"
	ReasonProviderNotFound  FailReason = "provider_not_found"
	ReasonCallFailed        FailReason = "call_failed"
	ReasonEmptyResponse     FailReason = "empty_response"
)

// RemoteError 远程补全失败。所有失败形态（缺少凭证、非成功状态、
// 响应体异常、超时）统一为该类型，由调用方决定回退。
type RemoteError struct {
	Reason FailReason
	Err    error
}

// Error 实现 error 接口
func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote completion failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("remote completion failed (%s)", e.Reason)
}

// Unwrap 返回底层错误
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteErr 构造 RemoteError
func remoteErr(reason FailReason, err error) *RemoteError {
	return &RemoteError{Reason: reason, Err: err}
}

// Client 远程文本补全客户端。失败统一以 *RemoteError 返回，
// 不在此层做重试或回退。
type Client struct {
	factory  *Factory
	provider string
}

// NewClient 创建补全客户端，provider 为空时使用默认提供商
func NewClient(factory *Factory, provider string) *Client {
	return &Client{factory: factory, provider: provider}
}

// Complete 以 system 指令和用户 prompt 发起单次补全调用。
// 返回生成文本；任何失败形态都包装为 *RemoteError。
func (c *Client) Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	providerCfg, ok := c.factory.ProviderConfig(c.provider)
	if !ok {
		return "", remoteErr(ReasonProviderNotFound, fmt.Errorf("provider %q not configured", c.provider))
	}
	if strings.TrimSpace(providerCfg.APIKey) == "" {
		return "", remoteErr(ReasonMissingCredential, fmt.Errorf("api key not set for provider %q", c.providerName()))
	}

	chatModel, err := c.factory.Get(ctx, c.provider)
	if err != nil {
		return "", remoteErr(ReasonProviderNotFound, err)
	}

	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	}

	opts := []model.Option{
		model.WithTemperature(temperature),
	}
	if maxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(maxTokens))
	}

	start := time.Now()
	outMsg, err := chatModel.Generate(ctx, msgs, opts...)
	duration := time.Since(start).Seconds()

	metrics.LLMCallDuration.WithLabelValues(c.providerName(), providerCfg.Model).Observe(duration)
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(c.providerName(), providerCfg.Model, "error").Inc()
		return "", remoteErr(ReasonCallFailed, err)
	}
	metrics.LLMCallTotal.WithLabelValues(c.providerName(), providerCfg.Model, "ok").Inc()

	if outMsg == nil || strings.TrimSpace(outMsg.Content) == "" {
		return "", remoteErr(ReasonEmptyResponse, nil)
	}
	return outMsg.Content, nil
}

// providerName 返回解析后的提供商名称
func (c *Client) providerName() string {
	if c.provider != "" {
		return c.provider
	}
	return c.factory.config.DefaultProvider
}

// Completer 文本补全契约。领域层依赖该接口，测试中以失败桩替代。
type Completer interface {
	Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error)
}

var _ Completer = (*Client)(nil)
