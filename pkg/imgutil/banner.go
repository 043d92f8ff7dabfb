package imgutil

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DecodeImage はプロバイダから受け取ったバイト列を画像にデコードします。
// image.Decode がサポートするフォーマット（PNG, JPEG, GIF等）に対応しています。
func DecodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}
	return img, nil
}

// ResizeToBanner は画像を指定サイズへ引き伸ばします。
// 元のアスペクト比は保持せず、Lanczos フィルタで正確に width x height にします。
// クロップやパディングは行いません。
func ResizeToBanner(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// SaveImage は画像をディスクへ書き込みます。
// 出力フォーマットはファイル名の拡張子から決定されます。
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("画像の保存に失敗しました (%s): %w", path, err)
	}
	return nil
}
