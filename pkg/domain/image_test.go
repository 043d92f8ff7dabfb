package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestBannerRequest_Seed(t *testing.T) {
	t.Run("Seedがnilの場合はランダムとして扱えるのだ", func(t *testing.T) {
		req := BannerRequest{
			Prompt: "赤い背景のバナー広告",
			Seed:   nil,
		}

		if req.Seed != nil {
			t.Error("Seedはnilであるべきなのだ")
		}
	})

	t.Run("Seedに値を指定して固定できるのだ", func(t *testing.T) {
		var val int64 = 42
		req := BannerRequest{
			Prompt: "青い背景のバナー広告",
			Seed:   &val,
		}

		if req.Seed == nil || *req.Seed != 42 {
			t.Errorf("Seedが正しく保持されていないのだ。値: %v", req.Seed)
		}
	})
}

func TestErrors_Classification(t *testing.T) {
	t.Run("ラップしても errors.Is で分類できること", func(t *testing.T) {
		wrapped := fmt.Errorf("実行失敗: %w", ErrEmptyPrompt)
		if !errors.Is(wrapped, ErrEmptyPrompt) {
			t.Error("ラップされた ErrEmptyPrompt を判定できないのだ")
		}
	})

	t.Run("別種のエラーとは一致しないこと", func(t *testing.T) {
		if errors.Is(ErrCredentialMissing, ErrNoImageData) {
			t.Error("異なるエラー同士が一致してしまったのだ")
		}
	})
}
