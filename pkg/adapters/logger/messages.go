package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Clip preparation (info)
		"Preparing clip for %s - destination %s":      "%s のクリップを作成中 - 出力先 %s",
		"Preparing pad clip from %s - destination %s": "%s からパッドクリップを作成中 - 出力先 %s",

		// Directory scan
		"Skipping %s: %s":                             "%s をスキップします: %s",
		"Skipping destination directory %s":           "出力先ディレクトリ %s をスキップします",
		"No frames matching %s in %s, skipping":       "%s に一致するフレームが %s にありません。スキップします",
		"No frames for a pad clip in %s, skipping":    "%s にパッドクリップ用のフレームがありません。スキップします",
		"No sequence directories found in %s":         "%s にシーケンスディレクトリが見つかりません",
		"Could not remove temporary directory %s: %s": "一時ディレクトリ %s を削除できませんでした: %s",

		// Encoder component
		"Would run: %s": "実行予定: %s",
		"Running: %s":   "実行中: %s",
		"Encoder failed for %s with exit status %d": "%s のエンコードが終了ステータス %d で失敗しました",
		"Encoder failed for %s: %s":                 "%s のエンコードに失敗しました: %s",

		// Probe component
		"Could not inspect %s: %s":            "%s を検査できませんでした: %s",
		"Clip %s: %d frames, %d ms, %s %dx%d": "クリップ %s: %d フレーム, %d ms, %s %dx%d",

		// Fatal conditions
		"The specified source does not exist.":                                                 "指定されたソースが存在しません。",
		"The specified source is not a directory.":                                             "指定されたソースはディレクトリではありません。",
		"The specified source could not be read due to inadequate permissions.":                "権限が不足しているため、指定されたソースを読み取れませんでした。",
		"The specified destination is not a directory.":                                        "指定された出力先はディレクトリではありません。",
		"The specified destination directory could not be created because of missing parents.": "親ディレクトリが存在しないため、出力先ディレクトリを作成できませんでした。",
		"The destination directory could not be created due to inadequate permissions.":        "権限が不足しているため、出力先ディレクトリを作成できませんでした。",
		"An IO error occurred while saving a clip to a file.":                                  "クリップをファイルに保存中に IO エラーが発生しました。",
		"A clip could not be saved due to inadequate permissions.":                             "権限が不足しているため、クリップを保存できませんでした。",
	})
}
