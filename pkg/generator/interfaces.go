package generator

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/shouni/gemini-banner-kit/pkg/domain"
)

// BannerGenerator はビジネスロジック層が利用する統合窓口です。
type BannerGenerator interface {
	Generate(ctx context.Context, req domain.BannerRequest) (*domain.ImageResponse, error)
}

// GenerativeClient は Gemini API との通信を抽象化するインターフェースです。
// genai.Client の Models フィールドがこのインターフェースを満たすため、
// テストではネットワークなしでモックに差し替えられます。
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageGeneratorCore は画像生成のコアロジックを抽象化するインターフェースです。
type ImageGeneratorCore interface {
	// prepareImagePart は、指定された画像URLから後続処理で利用する画像パーツを作成します。
	prepareImagePart(ctx context.Context, rawURL string) *genai.Part
	// parseToResponse は、プロバイダ応答を解析して画像ペイロードを抽出します。
	parseToResponse(resp *genai.GenerateContentResponse, seed int64) (*ImageOutput, error)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ImageCacher は、参照画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
