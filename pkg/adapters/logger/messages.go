package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session
		"Session started (font: %s)":     "セッションを開始しました (フォント: %s)",
		"Opened %s (%dx%d)":              "%s を開きました (%dx%d)",
		"Open cancelled":                 "ファイルを開く操作がキャンセルされました",
		"Export cancelled":               "エクスポートがキャンセルされました",
		"Exported %s (%s)":               "%s をエクスポートしました (%s)",
		"Overwriting %s":                 "%s を上書きします",
		"Preview updated":                "プレビューを更新しました",
		"Invalid image: %s":              "無効な画像です: %s",
		"Open an image before exporting": "エクスポートする前に画像を開いてください",
		"Command failed: %s":             "コマンドが失敗しました: %s",
		"Goodbye":                        "終了します",

		// Compositor
		"Rendered %s watermark: size %d at (%d,%d), layer %dx%d": "%s 透かしを描画: サイズ %d 位置 (%d,%d) レイヤー %dx%d",

		// Display
		"Preview written to %s": "プレビューを %s に書き出しました",
	})
}
