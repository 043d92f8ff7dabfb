package generator

import (
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/shouni/gemini-banner-kit/pkg/domain"
)

// parseToResponse は Gemini のレスポンスを解析して画像ペイロードを抽出します。
func (c *GeminiBannerCore) parseToResponse(resp *genai.GenerateContentResponse, seed int64) (*ImageOutput, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした: %w", domain.ErrNoImageData)
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &ImageOutput{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					UsedSeed: seed,
				}, nil
			}
			if part.Text != "" {
				// テキストパーツは破棄するが、内容はデバッグ用に残す
				slog.Debug("応答にテキストパーツが含まれています", "text", part.Text)
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s): %w", candidate.FinishReason, domain.ErrNoImageData)
	}

	return nil, domain.ErrNoImageData
}
