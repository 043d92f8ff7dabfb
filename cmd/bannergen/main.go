// bannergen は標準入力のプロンプトから Gemini でバナー画像を生成し、
// 固定解像度へリサイズして連番ファイル名で保存するワンショットCLIです。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"google.golang.org/genai"

	"github.com/shouni/gemini-banner-kit/pkg/app"
	"github.com/shouni/gemini-banner-kit/pkg/config"
	"github.com/shouni/gemini-banner-kit/pkg/generator"
	"github.com/shouni/gemini-banner-kit/pkg/httpfetch"
)

const (
	fetchTimeout       = 30 * time.Second
	cacheSweepInterval = 10 * time.Minute
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(context.Background()); err != nil {
		slog.Error("画像生成処理が失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Default()

	dir := flag.String("dir", cfg.OutputDir, "出力ディレクトリ")
	prefix := flag.String("prefix", cfg.Prefix, "出力ファイル名の接頭辞")
	ext := flag.String("ext", cfg.Ext, "出力ファイルの拡張子")
	model := flag.String("model", cfg.Model, "使用する Gemini モデル名")
	envFile := flag.String("env", config.DefaultEnvFile, "APIキーを記載した env ファイル")
	refURL := flag.String("ref", "", "参照画像のURL（任意）")
	seedFlag := flag.Int64("seed", -1, "生成シード（負値でランダム）")
	flag.Parse()

	cfg.OutputDir = *dir
	cfg.Prefix = *prefix
	cfg.Ext = *ext
	cfg.Model = *model

	// クレデンシャルはプロンプト入力やネットワーク接続より先に確定させる
	apiKey, err := config.LoadAPIKey(*envFile)
	if err != nil {
		return err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("Geminiクライアントの初期化に失敗しました: %w", err)
	}
	slog.Info("Geminiクライアントを初期化しました", "model", cfg.Model)

	refCache := gocache.New(cfg.RefCacheTTL, cacheSweepInterval)
	core, err := generator.NewGeminiBannerCore(httpfetch.New(fetchTimeout), refCache, cfg.RefCacheTTL)
	if err != nil {
		return err
	}

	gen, err := generator.NewGeminiBannerGenerator(core, client.Models, cfg.Model)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, gen, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	var seed *int64
	if *seedFlag >= 0 {
		seed = seedFlag
	}

	_, err = a.Run(ctx, *refURL, seed)
	return err
}
