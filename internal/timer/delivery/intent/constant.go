package intent

// Intent names of the interaction model.
const (
	IntentSetTimer    = "setTimerIntent"
	IntentReadTimer   = "readTimerIntent"
	IntentDeleteTimer = "deleteTimerIntent"
	IntentPause       = "AMAZON.PauseIntent"
	IntentResume      = "AMAZON.ResumeIntent"
	IntentHelp        = "AMAZON.HelpIntent"
	IntentCancel      = "AMAZON.CancelIntent"
	IntentStop        = "AMAZON.StopIntent"

	SlotDuration = "duration"
)

// Handler names, used in logs and metrics.
const (
	NameLaunch          = "Launch"
	NameSetTimer        = "SetTimer"
	NameReadTimer       = "ReadTimer"
	NameAskForResponse  = "AskForResponse"
	NamePauseTimer      = "PauseTimer"
	NameResumeTimer     = "ResumeTimer"
	NameDeleteTimer     = "DeleteTimer"
	NameHelp            = "Help"
	NameCancelAndStop   = "CancelAndStop"
	NameSessionEnded    = "SessionEnded"
	NameIntentReflector = "IntentReflector"
)

// Log prefixes
const (
	LogPrefixSetTimer    = "internal.timer.delivery.intent.SetTimer"
	LogPrefixReadTimer   = "internal.timer.delivery.intent.ReadTimer"
	LogPrefixAskFor      = "internal.timer.delivery.intent.AskForResponse"
	LogPrefixPause       = "internal.timer.delivery.intent.PauseTimer"
	LogPrefixResume      = "internal.timer.delivery.intent.ResumeTimer"
	LogPrefixDelete      = "internal.timer.delivery.intent.DeleteTimer"
	LogPrefixSessionEnd  = "internal.timer.delivery.intent.SessionEnded"
	LogPrefixErrorHandle = "internal.timer.delivery.intent.ErrorHandler"
)

// Timer defaults
const (
	DefaultLocale       = "ja-JP"
	DefaultTimerLabel   = "タイマーのお知らせ"
	DefaultAnnounceText = "お知らせです。"
	DefaultFanoutLimit  = 4
)

// Connection status codes of a Connections.Response.
const (
	ConnectionStatusOK         = "200"
	ConnectionStatusBadRequest = "400"
)

// Speech
const (
	SpeechWhatNext      = "次は、どうしますか？"
	SpeechWhatNextShort = "次はどうしますか？"

	SpeechWelcome = "タイマーのサンプルにようこそ。"
	SpeechIntro   = "このスキルでは、５分のタイマーをセットして、のようにタイマーの時間を設定することができます。どうしますか？"

	SpeechAskDuration = "何分のタイマーをセットしますか？「５分のタイマーをセットして」のように言ってください。"
	SpeechTimerActive = "タイマーは起動中です。確認したい場合は、タイマーをチェックして。と言ってみてください。" + SpeechWhatNext
	SpeechSetFailed   = "タイマーのセットに失敗しました。ごめんなさい。" + SpeechWhatNext

	SpeechTimerCount  = "現在、%d個のタイマーがセットされています。"
	SpeechTimerStatus = "お客様のタイマーは、現在 %s。" + SpeechWhatNext
	SpeechStatusOn    = "起動中です"
	SpeechStatusOff   = "オフになっています"
	SpeechStatusPause = "停止中です"
	SpeechStatusOther = "不明な状態です"
	SpeechNoTimerRead = "現在、タイマーがセットされていません。タイマーをセットして、と言ってみてください。" + SpeechWhatNext
	SpeechReadFailed  = "タイマーの状態を調べるのに失敗しました。ごめんなさい。" + SpeechWhatNext

	SpeechConsentAccepted = "それでは、セットしたい時間で、「何分のタイマーをセットして」のように言ってみてください。" + SpeechWhatNext
	SpeechConsentDenied   = "タイマーの使用許可をいただけなかったので、このスキルを続けることができません。後ほどもう一度お試しください。バイバイ"
	SpeechConsentCardSent = "お客様のAlexaアプリに、このスキルがタイマーを使用することを許可するためのカードを送りました。権限を許可していただいた後に、もう一度このスキルを呼び出してください。"
	SpeechConsentError    = "タイマーの使用許可をいただく途中でエラーが起きてしまいました。後ほどもう一度お試しください。バイバイ"

	SpeechNoTimers = "現在、タイマーはセットされていません。タイマーをセットして、と言ってみてください。" + SpeechWhatNext

	SpeechPaused        = "タイマーを停止しました。再開する場合は、タイマーを再開して。と言ってください。" + SpeechWhatNext
	SpeechPausePartial  = "一部のタイマーは停止できませんでした。"
	SpeechPauseFailed   = "タイマーの停止に失敗しました。ごめんなさい。" + SpeechWhatNext
	SpeechResumed       = "タイマーを再開しました。再び停止させたい場合は、タイマーを停止して、と言ってください。"
	SpeechResumePartial = "一部のタイマーは再開できませんでした。"
	SpeechResumeFailed  = "タイマーの再開に失敗しました。ごめんなさい。" + SpeechWhatNext

	SpeechDeleted      = "タイマーは削除されました。別のタイマーをセットしたい場合は、「何分のタイマーをセットして」のように言ってみてください。" + SpeechWhatNext
	SpeechDeleteFailed = "タイマーの削除に失敗しました。ごめんなさい。" + SpeechWhatNext

	SpeechHelp      = "「５分のタイマーをセットして」「タイマーをチェックして」「タイマーを停止して」「タイマーを再開して」「タイマーを削除して」のように話しかけてください。どうしますか？"
	SpeechGoodbye   = "さようなら。"
	SpeechReflector = "You just triggered %s"
	SpeechApology   = "Sorry, I had trouble doing what you asked. Please try again."
)
