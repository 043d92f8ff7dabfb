package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shouni/gemini-banner-kit/pkg/domain"
)

// Collect は入力ストリームから複数行のプロンプトを読み取ります。
// 最初の空行（または EOF）で読み取りを終了し、収集した行を改行で連結して
// 前後の空白を除去した文字列を返します。
// 整形後の結果が空の場合は domain.ErrEmptyPrompt を返します。
func Collect(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("プロンプトの読み取りに失敗しました: %w", err)
	}

	result := strings.TrimSpace(strings.Join(lines, "\n"))
	if result == "" {
		return "", domain.ErrEmptyPrompt
	}
	return result, nil
}
