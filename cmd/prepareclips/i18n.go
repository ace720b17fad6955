// Package main provides localization for the prepareclips CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Output":  "出力",
		"Encoder": "エンコーダ",
		"Logging": "ログ",

		// Root command
		"Turn directories of PNG frames into mp4 clips": "PNGフレームのディレクトリをmp4クリップに変換",

		"Each subdirectory of SOURCE becomes SOURCE/clips/<name>.mp4. A padding clip holding the last frame of the last subdirectory is added unless --skippadclip is given.": "SOURCE の各サブディレクトリが SOURCE/clips/<name>.mp4 になります。--skippadclip を指定しない限り、最後のサブディレクトリの最終フレームを保持するパッドクリップが追加されます。",

		// Output flags
		"Destination directory, relative to SOURCE unless absolute": "出力先ディレクトリ（絶対パス以外は SOURCE からの相対パス）",

		"Clip frame rate":                              "クリップのフレームレート",
		"Do not create a padding clip":                 "パッドクリップを作成しない",
		"Output run summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",

		// Encoder flags
		"YAML configuration file":                            "YAML設定ファイル",
		"Path to the ffmpeg executable":                      "ffmpeg実行ファイルのパス",
		"Log the encoder command lines without running them": "エンコーダを実行せずにコマンドラインを出力",

		// Logging flags
		"Enable debug output":                  "デバッグ出力を有効化",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Using ffmpeg at %s":                       "ffmpeg %s を使用します",
		"Prepared %d clips, %d failed, %d skipped": "%d 件のクリップを作成しました（失敗 %d 件、スキップ %d 件）",
		"Summary saved to %s":                      "サマリーを %s に保存しました",

		// Error messages
		"exactly one SOURCE directory is required":           "SOURCE ディレクトリを1つだけ指定してください",
		"Incorrect usage: %s":                                "使い方が正しくありません: %s",
		"ffmpeg was not found. Install it or pass --ffmpeg.": "ffmpeg が見つかりません。インストールするか --ffmpeg を指定してください。",

		// Summary content
		"Clip Preparation Summary": "クリップ作成サマリー",
		"Item":                     "項目",
		"Value":                    "値",
		"Source":                   "ソース",
		"Destination":              "出力先",
		"Frame Rate":               "フレームレート",
		"Codec":                    "コーデック",
		"Padding":                  "パディング",
		"Elapsed":                  "所要時間",
		"Dry Run":                  "ドライラン",
		"Yes":                      "はい",
		"Clips":                    "クリップ",
		"No clips were prepared.":  "クリップは作成されませんでした。",
		"Clip":                     "クリップ",
		"Status":                   "状態",
		"Frames":                   "フレーム数",
		"Duration":                 "再生時間",
		"Resolution":               "解像度",
		"File Size":                "ファイルサイズ",
		"Written":                  "作成",
		"Failed":                   "失敗",
		"Skipped":                  "スキップ",
		"ok":                       "成功",
		"failed":                   "失敗",
		"skipped":                  "スキップ",
		"dry-run":                  "ドライラン",
		"Generated by":             "生成:",
	})
}
