// Package main provides localization for the watermark CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Settings": "設定",
		"Logging":  "ログ",
		"Files":    "ファイル",
		"Style":    "スタイル",

		// Root command
		"Overlay text watermarks on images": "画像にテキストの透かしを重ねる",

		// Root description
		"watermark previews a rotated, semi-transparent text overlay on a 640px preview and exports it at full resolution.": "watermarkは回転・半透明のテキストを640pxのプレビューに重ね、元の解像度で書き出します。",

		// Global flags
		"YAML file with tool settings":                   "ツール設定のYAMLファイル",
		"TrueType font file (default: built-in Go Bold)": "TrueTypeフォントファイル（デフォルト: 内蔵のGo Bold）",
		"Log level (debug, info, warn, error)":           "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                        "全てのログ出力を抑制",

		// Session command
		"Edit a watermark interactively or from a script":   "対話的またはスクリプトで透かしを編集",
		"Read commands from a file instead of the terminal": "端末の代わりにファイルからコマンドを読み込む",
		"Directory the preview PNG is written to":           "プレビューPNGの出力先ディレクトリ",
		"Keep a numbered copy of every preview":             "プレビューごとに連番のコピーを残す",

		// Apply command
		"Watermark one image and export it":             "1枚の画像に透かしを入れて書き出す",
		"Image to watermark":                            "透かしを入れる画像",
		"Export path; the extension selects the format": "書き出し先（拡張子で形式を選択）",
		"Also write the 640px preview PNG to this path": "640pxのプレビューPNGもこのパスに書き出す",
		"Watermark text":                                "透かしのテキスト",
		"Font size in preview pixels":                   "プレビュー上のフォントサイズ（ピクセル）",
		"Text color name":                               "文字色の名前",
		"Opacity (0-255)":                               "不透明度（0-255）",
		"Clockwise rotation in degrees":                 "時計回りの回転角度",
		"Text left edge in preview pixels":              "プレビュー上のテキスト左端（ピクセル）",
		"Text top edge in preview pixels":               "プレビュー上のテキスト上端（ピクセル）",

		// Colors and version commands
		"List the color names and font sizes": "色名とフォントサイズを一覧表示",
		"Colors:":                             "色:",
		"Font sizes: %s":                      "フォントサイズ: %s",
		"Show version information":            "バージョン情報を表示",
		"watermark version %s":                "watermark バージョン %s",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。終了中...",
		"Failed to load config: %s":     "設定の読み込みに失敗しました: %s",
		"Failed to load font: %s":       "フォントの読み込みに失敗しました: %s",
		"Failed to open script: %s":     "スクリプトを開けませんでした: %s",
		"Export failed: %s":             "書き出しに失敗しました: %s",
	})
}
