package generator

const (
	// UseImageCompression は参照画像をアップロード前にJPEGへ圧縮するかどうかです。
	UseImageCompression     = true
	ImageCompressionQuality = 75

	cacheKeyRefImage = "ref_image:"
)

// ImageOutput は Core の内部解析結果です。
type ImageOutput struct {
	Data     []byte
	MimeType string
	UsedSeed int64
}
