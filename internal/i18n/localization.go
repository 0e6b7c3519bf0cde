package i18n

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyHeader              = "header"
	KeySubheader           = "subheader"
	KeySlider              = "slider"
	KeySoundNotification   = "sound_notification"
	KeyStartButton         = "start_button"
	KeyAddMinute           = "add_minute"
	KeyHelp                = "help"
	KeyTimerRunning        = "timer_running"
	KeyTimerPaused         = "timer_paused"
	KeyTimerStopped        = "timer_stopped"
	KeyNotificationSummary = "notification_summary"
	KeyNotificationBody    = "notification_body"
)

// Keys lists every message key
var Keys = []string{
	KeyAppTitle,
	KeyHeader,
	KeySubheader,
	KeySlider,
	KeySoundNotification,
	KeyStartButton,
	KeyAddMinute,
	KeyHelp,
	KeyTimerRunning,
	KeyTimerPaused,
	KeyTimerStopped,
	KeyNotificationSummary,
	KeyNotificationBody,
}

// Localization resolves message keys for one language.
// It is immutable and safe for concurrent use.
type Localization struct {
	language Language
	texts    map[string]string
	fallback map[string]string
}

// NewLocalization creates a localization for lang.
// Unknown languages use the Other table.
func NewLocalization(lang Language) *Localization {
	texts, ok := translations[lang]
	if !ok {
		lang = Other
		texts = translations[Other]
	}
	return &Localization{
		language: lang,
		texts:    texts,
		fallback: translations[EnglishUS],
	}
}

// ForSetting creates a localization from a language setting.
// "system" or an empty value detects the OS locale.
func ForSetting(setting string) *Localization {
	if setting == "" || setting == SystemLanguage {
		return NewLocalization(Detect())
	}
	return NewLocalization(Resolve(setting))
}

// Language returns the language in use
func (l *Localization) Language() Language {
	return l.language
}

// Text returns localized text for the given key
func (l *Localization) Text(key string) string {
	if text, found := l.texts[key]; found {
		return text
	}

	// Fallback to English
	if text, found := l.fallback[key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

var translations = map[Language]map[string]string{
	EnglishUS: {
		KeyAppTitle:            "Pirate sands Timer",
		KeyHeader:              "Pirate sands Timer",
		KeySubheader:           "⌛ Working hours ⌛",
		KeySlider:              "MINUTES",
		KeySoundNotification:   "Sound notification",
		KeyStartButton:         "▶ Start",
		KeyAddMinute:           "➕ one minute",
		KeyHelp:                "Press S: Start/Pause, A: +1m, R: Reset, Q: Quit",
		KeyTimerRunning:        "Time is passing, FULL FOCUS.",
		KeyTimerPaused:         "Pause, you need to take a break",
		KeyTimerStopped:        "The timer is not running",
		KeyNotificationSummary: "The timer has ended. Take a break",
		KeyNotificationBody:    "Time's up",
	},
	Russian: {
		KeyAppTitle:            "Пиратский таймер",
		KeyHeader:              "Пиратский таймер",
		KeySubheader:           "⌛ Рабочее время ⌛",
		KeySlider:              "МИНУТЫ",
		KeySoundNotification:   "Звуковое уведомление",
		KeyStartButton:         "▶ Старт",
		KeyAddMinute:           "➕ одна минута",
		KeyHelp:                "Нажмите S: Старт/Пауза, A: +1 мин, R: Сброс, Q: Выход",
		KeyTimerRunning:        "Время идёт, ПОЛНАЯ КОНЦЕНТРАЦИЯ.",
		KeyTimerPaused:         "Пауза, нужно сделать перерыв",
		KeyTimerStopped:        "Таймер не запущен",
		KeyNotificationSummary: "Таймер закончился. Сделайте перерыв",
		KeyNotificationBody:    "Время вышло",
	},
	ChineseSimplified: {
		KeyAppTitle:            "海盗沙地计时器",
		KeyHeader:              "海盗沙地计时器",
		KeySubheader:           "⌛ 工作时间 ⌛",
		KeySlider:              "分钟",
		KeySoundNotification:   "声音通知",
		KeyStartButton:         "▶ 开始",
		KeyAddMinute:           "➕ 一分钟",
		KeyHelp:                "按 S：开始/暂停，A：+1 分钟，R：重置，Q：退出",
		KeyTimerRunning:        "时间流逝，全神贯注。",
		KeyTimerPaused:         "暂停，你需要休息一下",
		KeyTimerStopped:        "计时器未运行",
		KeyNotificationSummary: "计时结束，休息一下",
		KeyNotificationBody:    "时间到",
	},
	ChineseTraditional: {
		KeyAppTitle:            "海盜沙地計時器",
		KeyHeader:              "海盜沙地計時器",
		KeySubheader:           "⌛ 工作時間 ⌛",
		KeySlider:              "分鐘",
		KeySoundNotification:   "聲音通知",
		KeyStartButton:         "▶ 開始",
		KeyAddMinute:           "➕ 一分鐘",
		KeyHelp:                "按 S：開始/暫停，A：+1 分鐘，R：重置，Q：退出",
		KeyTimerRunning:        "時間流逝，全神貫注。",
		KeyTimerPaused:         "暫停，你需要休息一下",
		KeyTimerStopped:        "計時器未運行",
		KeyNotificationSummary: "計時結束，休息一下",
		KeyNotificationBody:    "時間到",
	},
	Spanish: {
		KeyAppTitle:            "Temporizador de arena pirata",
		KeyHeader:              "Temporizador de arena pirata",
		KeySubheader:           "⌛ Horario laboral ⌛",
		KeySlider:              "MINUTOS",
		KeySoundNotification:   "Notificación sonora",
		KeyStartButton:         "▶ Iniciar",
		KeyAddMinute:           "➕ un minuto",
		KeyHelp:                "Presiona S: Iniciar/Pausar, A: +1 min, R: Reiniciar, Q: Salir",
		KeyTimerRunning:        "El tiempo pasa, CONCENTRACIÓN TOTAL.",
		KeyTimerPaused:         "Pausa, necesitas tomar un descanso",
		KeyTimerStopped:        "El temporizador no está en funcionamiento",
		KeyNotificationSummary: "El temporizador ha terminado. Tómate un descanso",
		KeyNotificationBody:    "Se acabó el tiempo",
	},
	French: {
		KeyAppTitle:            "Chronomètre des sables pirates",
		KeyHeader:              "Chronomètre des sables pirates",
		KeySubheader:           "⌛ Heures de travail ⌛",
		KeySlider:              "MINUTES",
		KeySoundNotification:   "Notification sonore",
		KeyStartButton:         "▶ Démarrer",
		KeyAddMinute:           "➕ une minute",
		KeyHelp:                "Appuyez sur S : Démarrer/Pause, A : +1 min, R : Réinitialiser, Q : Quitter",
		KeyTimerRunning:        "Le temps passe, CONCENTRATION MAXIMALE.",
		KeyTimerPaused:         "Pause, vous devez faire une pause",
		KeyTimerStopped:        "Le chronomètre ne fonctionne pas",
		KeyNotificationSummary: "Le minuteur est terminé. Faites une pause",
		KeyNotificationBody:    "Temps écoulé",
	},
	German: {
		KeyAppTitle:            "Piratensanduhr-Zeitgeber",
		KeyHeader:              "Piratensanduhr-Zeitgeber",
		KeySubheader:           "⌛ Arbeitszeit ⌛",
		KeySlider:              "MINUTEN",
		KeySoundNotification:   "Tonbenachrichtigung",
		KeyStartButton:         "▶ Start",
		KeyAddMinute:           "➕ eine Minute",
		KeyHelp:                "Drücke S: Start/Pause, A: +1 Min, R: Zurücksetzen, Q: Beenden",
		KeyTimerRunning:        "Die Zeit vergeht, VOLLE KONZENTRATION.",
		KeyTimerPaused:         "Pause, du brauchst eine Pause",
		KeyTimerStopped:        "Der Timer läuft nicht",
		KeyNotificationSummary: "Der Timer ist abgelaufen. Mach eine Pause",
		KeyNotificationBody:    "Die Zeit ist um",
	},
	Japanese: {
		KeyAppTitle:            "海賊の砂時計タイマー",
		KeyHeader:              "海賊の砂時計タイマー",
		KeySubheader:           "⌛ 勤務時間 ⌛",
		KeySlider:              "分",
		KeySoundNotification:   "サウンド通知",
		KeyStartButton:         "▶ 開始",
		KeyAddMinute:           "➕ 1分追加",
		KeyHelp:                "S: 開始/一時停止、A: +1分、R: リセット、Q: 終了",
		KeyTimerRunning:        "時間が経過中、全力集中。",
		KeyTimerPaused:         "一時停止、休憩が必要です",
		KeyTimerStopped:        "タイマーは動作していません",
		KeyNotificationSummary: "タイマーが終了しました。休憩しましょう",
		KeyNotificationBody:    "時間です",
	},
	Korean: {
		KeyAppTitle:            "해적 모래 시계 타이머",
		KeyHeader:              "해적 모래 시계 타이머",
		KeySubheader:           "⌛ 근무 시간 ⌛",
		KeySlider:              "분",
		KeySoundNotification:   "소리 알림",
		KeyStartButton:         "▶ 시작",
		KeyAddMinute:           "➕ 1분 추가",
		KeyHelp:                "S: 시작/일시정지, A: +1분, R: 재설정, Q: 종료",
		KeyTimerRunning:        "시간이 흐르는 중, 완전 집중.",
		KeyTimerPaused:         "일시 중지, 휴식이 필요합니다",
		KeyTimerStopped:        "타이머가 실행 중이 아닙니다",
		KeyNotificationSummary: "타이머가 끝났습니다. 휴식하세요",
		KeyNotificationBody:    "시간이 다 되었습니다",
	},
	Portuguese: {
		KeyAppTitle:            "Cronômetro de areia pirata",
		KeyHeader:              "Cronômetro de areia pirata",
		KeySubheader:           "⌛ Horário de trabalho ⌛",
		KeySlider:              "MINUTOS",
		KeySoundNotification:   "Notificação sonora",
		KeyStartButton:         "▶ Iniciar",
		KeyAddMinute:           "➕ um minuto",
		KeyHelp:                "Pressione S: Iniciar/Pausar, A: +1 min, R: Reiniciar, Q: Sair",
		KeyTimerRunning:        "O tempo está passando, FOCO TOTAL.",
		KeyTimerPaused:         "Pausa, você precisa descansar",
		KeyTimerStopped:        "O cronômetro não está rodando",
		KeyNotificationSummary: "O cronômetro terminou. Faça uma pausa",
		KeyNotificationBody:    "Acabou o tempo",
	},
	Other: {
		KeyAppTitle:            "Pirate sands Timer",
		KeyHeader:              "Pirate sands Timer",
		KeySubheader:           "⌛ Working hours ⌛",
		KeySlider:              "MINUTES",
		KeySoundNotification:   "Sound notification",
		KeyStartButton:         "▶ Start",
		KeyAddMinute:           "➕ +1 min",
		KeyHelp:                "Press S: Start/Pause, A: +1m, R: Reset, Q: Quit",
		KeyTimerRunning:        "Time is passing, FULL FOCUS.",
		KeyTimerPaused:         "Pause, you need to take a break",
		KeyTimerStopped:        "The timer is not running",
		KeyNotificationSummary: "The timer has ended. Take a break",
		KeyNotificationBody:    "Time's up",
	},
}
