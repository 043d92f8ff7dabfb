// Package httpfetch は参照画像取得用の小さな HTTP クライアントです。
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxFetchBytes は参照画像1枚あたりの取得上限です。
const maxFetchBytes = 20 << 20 // 20 MiB

// Client は generator.HTTPClient を満たす実装です。
type Client struct {
	httpClient *http.Client
}

// New は指定タイムアウトの Client を返します。
func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchBytes は URL の内容を取得してバイト列で返します。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの構築に失敗しました: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("取得に失敗しました (%s): %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("取得に失敗しました (%s): status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("本文の読み取りに失敗しました (%s): %w", url, err)
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("応答が大きすぎます (%s): %d バイト超", url, maxFetchBytes)
	}
	return data, nil
}
