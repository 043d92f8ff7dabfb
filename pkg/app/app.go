// Package app は1回の実行（プロンプト収集から保存まで）を編成します。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/shouni/gemini-banner-kit/pkg/config"
	"github.com/shouni/gemini-banner-kit/pkg/domain"
	"github.com/shouni/gemini-banner-kit/pkg/generator"
	"github.com/shouni/gemini-banner-kit/pkg/imgutil"
	"github.com/shouni/gemini-banner-kit/pkg/prompt"
	"github.com/shouni/gemini-banner-kit/pkg/sequence"
)

// App は実行に必要な依存関係の集合です。
type App struct {
	cfg config.Config
	gen generator.BannerGenerator
	in  io.Reader
	out io.Writer
}

// New は依存関係を注入して App を初期化します。
func New(cfg config.Config, gen generator.BannerGenerator, in io.Reader, out io.Writer) (*App, error) {
	if gen == nil {
		return nil, fmt.Errorf("gen (BannerGenerator) is required")
	}
	if in == nil {
		return nil, fmt.Errorf("in (input stream) is required")
	}
	if out == nil {
		return nil, fmt.Errorf("out (output stream) is required")
	}

	return &App{cfg: cfg, gen: gen, in: in, out: out}, nil
}

// Run はプロンプト収集 → 生成 → リサイズ → 連番命名 → 保存を1回実行し、
// 保存したファイル名を返します。失敗した場合、ファイルは一切書き込まれません。
func (a *App) Run(ctx context.Context, referenceURL string, seed *int64) (string, error) {
	fmt.Fprintln(a.out, "Enter your image prompt (finish by entering an empty line):")

	userPrompt, err := prompt.Collect(a.in)
	if err != nil {
		return "", err
	}

	fmt.Fprintln(a.out, "Generating image…")
	slog.InfoContext(ctx, "画像生成を開始します", "prompt_len", len(userPrompt))

	resp, err := a.gen.Generate(ctx, domain.BannerRequest{
		Prompt:       userPrompt,
		ReferenceURL: referenceURL,
		Seed:         seed,
	})
	if err != nil {
		return "", err
	}

	img, err := imgutil.DecodeImage(resp.Data)
	if err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "画像を受信しました",
		"mime_type", resp.MimeType,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	// アスペクト比は保持せず、固定のバナーサイズへ引き伸ばす
	banner := imgutil.ResizeToBanner(img, a.cfg.Width, a.cfg.Height)
	slog.InfoContext(ctx, "バナーサイズへリサイズしました",
		"width", a.cfg.Width, "height", a.cfg.Height)

	filename, err := sequence.NextFilename(a.cfg.OutputDir, a.cfg.Prefix, a.cfg.Ext)
	if err != nil {
		return "", err
	}

	path := filepath.Join(a.cfg.OutputDir, filename)
	if err := imgutil.SaveImage(banner, path); err != nil {
		return "", err
	}
	slog.InfoContext(ctx, "画像を保存しました", "path", path,
		"width", a.cfg.Width, "height", a.cfg.Height)

	fmt.Fprintf(a.out, "Saved as %s (%d×%d)\n", filename, a.cfg.Width, a.cfg.Height)
	return filename, nil
}
