// Package sequence は出力ディレクトリ内の連番ファイル名を割り当てます。
package sequence

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// NextFilename は directory 内の `<prefix><番号><ext>` 形式のファイルを走査し、
// 既存の最大番号 + 1 のファイル名を返します。該当ファイルがなければ番号 1 です。
// directory が存在しない場合は作成します。
//
// 番号の比較は整数値で行うため、`img007.png` は 7 として扱われます。
// 欠番は再利用せず、常に最大値の次を返します。
//
// 走査と書き込みの間に排他制御はありません。同一ディレクトリへ並行実行した場合、
// 同じ番号を算出して上書きし合う可能性があります（既知の制限）。
func NextFilename(directory, prefix, ext string) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(prefix) + `(\d+)` + regexp.QuoteMeta(ext) + "$")
	if err != nil {
		return "", fmt.Errorf("ファイル名パターンの構築に失敗しました: %w", err)
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("出力ディレクトリの走査に失敗しました: %w", err)
	}

	maxIndex := 0
	for _, entry := range entries {
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ にマッチした以上、失敗するのは int の範囲を超えた場合のみ
			continue
		}
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	return fmt.Sprintf("%s%d%s", prefix, maxIndex+1, ext), nil
}
