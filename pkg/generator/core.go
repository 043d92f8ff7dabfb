package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/shouni/gemini-banner-kit/pkg/imgutil"
)

// GeminiBannerCore は参照画像の準備と応答解析の共通ロジックを保持するコンポーネントです。
type GeminiBannerCore struct {
	httpClient HTTPClient
	imageCache ImageCacher
	cacheTTL   time.Duration
}

// NewGeminiBannerCore は依存関係を注入して GeminiBannerCore を初期化します。
func NewGeminiBannerCore(httpClient HTTPClient, imageCache ImageCacher, cacheTTL time.Duration) (*GeminiBannerCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// imageCache は nil を許容（キャッシュなし動作）

	return &GeminiBannerCore{
		httpClient: httpClient,
		imageCache: imageCache,
		cacheTTL:   cacheTTL,
	}, nil
}

// prepareImagePart は URL から参照画像を準備して genai.Part に変換します。
// 取得や検証に失敗した場合は nil を返し、呼び出し側はテキストのみで続行します。
func (c *GeminiBannerCore) prepareImagePart(ctx context.Context, rawURL string) *genai.Part {
	// キャッシュの確認
	if c.imageCache != nil {
		if cached, found := c.imageCache.Get(cacheKeyRefImage + rawURL); found {
			if data, ok := cached.([]byte); ok {
				return c.toPart(data)
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL, "type", fmt.Sprintf("%T", cached))
		}
	}

	// SSRF対策のバリデーション
	if safe, err := IsSafeURL(rawURL); !safe || err != nil {
		slog.WarnContext(ctx, "SSRFの可能性がある、または不正なURLをブロックしました",
			"url", rawURL, "error", err)
		return nil
	}

	// 参照画像のダウンロード
	data, err := c.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		slog.WarnContext(ctx, "参照画像のダウンロードに失敗しました。テキストのみで続行します",
			"url", rawURL, "error", err)
		return nil
	}

	// ペイロード削減のための圧縮
	finalData := data
	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
		}
	}

	// キャッシュに保存
	if c.imageCache != nil {
		c.imageCache.Set(cacheKeyRefImage+rawURL, finalData, c.cacheTTL)
	}
	return c.toPart(finalData)
}

// toPart はバイト列を genai.Part (InlineData) に変換します。
func (c *GeminiBannerCore) toPart(data []byte) *genai.Part {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		slog.Warn("MIMEタイプが画像ではないためPartに変換できませんでした", "detected_mime_type", mimeType)
		return nil
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     data,
		},
	}
}
