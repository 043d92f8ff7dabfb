package generator

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/shouni/gemini-banner-kit/pkg/domain"
)

// GeminiBannerGenerator はバナー画像の生成を管理するアダプター層です。
type GeminiBannerGenerator struct {
	imgCore  ImageGeneratorCore // 共通ロジック保持（コンポジション）
	aiClient GenerativeClient   // 通信クライアント
	model    string             // 使用するモデル名
}

// NewGeminiBannerGenerator は GeminiBannerCore と依存関係を注入して初期化します。
func NewGeminiBannerGenerator(
	core ImageGeneratorCore,
	aiClient GenerativeClient,
	model string,
) (*GeminiBannerGenerator, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageGeneratorCore) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (GenerativeClient) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &GeminiBannerGenerator{
		imgCore:  core,
		aiClient: aiClient,
		model:    model,
	}, nil
}

// Generate はドメインのリクエストを Gemini API の形式に変換して実行します。
func (g *GeminiBannerGenerator) Generate(ctx context.Context, req domain.BannerRequest) (*domain.ImageResponse, error) {
	parts := []*genai.Part{
		{Text: req.Prompt},
	}

	// 参照画像があれば Core の機能を使って追加
	if req.ReferenceURL != "" {
		if imgPart := g.imgCore.prepareImagePart(ctx, req.ReferenceURL); imgPart != nil {
			parts = append(parts, imgPart)
		}
	}

	// 生成オプションの設定
	// domain.Seed (*int64) を SDK 用の *int32 に変換する
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		Seed:               seedToPtrInt32(req.Seed),
	}

	slog.InfoContext(ctx, "Geminiへ画像生成リクエストを送信します",
		"model", g.model, "parts", len(parts))

	// 通信実行
	resp, err := g.aiClient.GenerateContent(ctx, g.model, []*genai.Content{{Parts: parts}}, cfg)
	if err != nil {
		return nil, fmt.Errorf("Geminiバナー生成エラー: %w", err)
	}

	// 入力シード値を UsedSeed の初期値として扱うため、int64 型で抽出します。
	out, err := g.imgCore.parseToResponse(resp, dereferenceSeed(req.Seed))
	if err != nil {
		return nil, err
	}

	return &domain.ImageResponse{
		Data:     out.Data,
		MimeType: out.MimeType,
		UsedSeed: out.UsedSeed,
	}, nil
}
