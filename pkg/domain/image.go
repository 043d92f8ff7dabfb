package domain

// BannerRequest は単一のバナー画像生成要求です。
// Seed を *int64 で保持し、SDK 境界で *int32 へ変換します。
type BannerRequest struct {
	Prompt       string
	ReferenceURL string // 一貫性保持のための参照画像URL（任意）
	Seed         *int64 // nil でランダム、値指定で固定
}

// ImageResponse は生成された画像データとそのメタデータです。
type ImageResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64 // 戻り値は情報欠落を防ぐため int64
}
