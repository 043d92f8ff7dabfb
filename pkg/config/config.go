// Package config は実行時設定と API クレデンシャルの読み込みを提供します。
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-banner-kit/pkg/domain"
)

// バナーの出力解像度。変更はリビルドを要する固定値です。
const (
	BannerWidth  = 1200
	BannerHeight = 628
)

// 既定値群
const (
	DefaultOutputDir = "images"
	DefaultPrefix    = "img"
	DefaultExt       = ".png"
	DefaultModel     = "gemini-2.0-flash-exp-image-generation"
	DefaultEnvFile   = "GEMINI_API_KEY.env"

	// 参照画像キャッシュの既定TTL
	DefaultRefCacheTTL = time.Hour

	apiKeyEnvName = "GEMINI_API_KEY"
)

// Config は1回の実行に必要な設定の集合です。
// グローバル状態を持たず、各コンポーネントへ明示的に渡します。
type Config struct {
	Width       int
	Height      int
	OutputDir   string
	Prefix      string
	Ext         string
	Model       string
	RefCacheTTL time.Duration
}

// Default は既定値で初期化した Config を返します。
func Default() Config {
	return Config{
		Width:       BannerWidth,
		Height:      BannerHeight,
		OutputDir:   DefaultOutputDir,
		Prefix:      DefaultPrefix,
		Ext:         DefaultExt,
		Model:       DefaultModel,
		RefCacheTTL: DefaultRefCacheTTL,
	}
}

// LoadAPIKey は envFile（GEMINI_API_KEY.env 形式）を読み込み、
// GEMINI_API_KEY の値を返します。ファイルが存在しない、またはキーが
// 未設定・空の場合は domain.ErrCredentialMissing を返します。
//
// 読み込んだ値は環境変数経由ではなく戻り値として呼び出し側へ渡します。
func LoadAPIKey(envFile string) (string, error) {
	if _, err := os.Stat(envFile); err != nil {
		return "", fmt.Errorf("クレデンシャルファイル %s を読めません: %w", envFile, domain.ErrCredentialMissing)
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		return "", fmt.Errorf("クレデンシャルファイル %s の解析に失敗しました: %w", envFile, err)
	}

	key := values[apiKeyEnvName]
	if key == "" {
		// ファイルに無い場合でも、プロセス環境に設定済みなら許容する
		key = os.Getenv(apiKeyEnvName)
	}
	if key == "" {
		return "", fmt.Errorf("%s が %s に設定されていません: %w", apiKeyEnvName, envFile, domain.ErrCredentialMissing)
	}
	return key, nil
}
