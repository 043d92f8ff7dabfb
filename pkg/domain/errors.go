package domain

import "errors"

// 実行を中断させる基本エラー群です。呼び出し側は errors.Is で分類できます。
var (
	// ErrCredentialMissing は API キーのファイルが存在しない、
	// または環境変数が未設定の場合に返されます。ネットワーク接続前に確定します。
	ErrCredentialMissing = errors.New("GEMINI_API_KEY が見つかりません")

	// ErrEmptyPrompt は整形後のプロンプトが空だった場合に返されます。
	// この場合、生成リクエストは一切送信されません。
	ErrEmptyPrompt = errors.New("プロンプトが空です")

	// ErrNoImageData はプロバイダ応答に画像ペイロードが含まれない場合に返されます。
	ErrNoImageData = errors.New("画像データが見つかりませんでした")
)
