package ui

// Keys for every user-visible string, shared by the widgets and the menus
const (
	KeyAppTitle         = "app_title"
	KeyQueriesLabel     = "queries_label"
	KeyQueriesHint      = "queries_hint"
	KeyOperation        = "operation"
	KeyRun              = "run"
	KeyStop             = "stop"
	KeyClearLog         = "clear_log"
	KeyBrowse           = "browse"
	KeyDownloadOptions  = "download_options"
	KeyAdvancedOptions  = "advanced_options"
	KeyOutputDirectory  = "output_directory"
	KeyAudioFormat      = "audio_format"
	KeyBitrate          = "bitrate"
	KeyThreads          = "threads"
	KeyOverwrite        = "overwrite"
	KeyEmbedLyrics      = "embed_lyrics"
	KeyEmbedMetadata    = "embed_metadata"
	KeySponsorBlock     = "sponsor_block"
	KeySaveFile         = "save_file"
	KeyArchiveFile      = "archive_file"
	KeySearchQuery      = "search_query"
	KeyPlaylistStart    = "playlist_start"
	KeyPlaylistEnd      = "playlist_end"
	KeyExtraArgs        = "extra_args"
	KeyOutputLog        = "output_log"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyStatusReady      = "status_ready"
	KeyStatusInProgress = "status_in_progress"
	KeyStatusCompleted  = "status_completed"
	KeyStatusFailed     = "status_failed"
	KeyStatusStopped    = "status_stopped"
	KeyNoQueries        = "no_queries"
	KeySaveFileRequired = "save_file_required"
	KeyJobActive        = "job_active"
	KeyLogCleared       = "log_cleared"
	KeyBadExtraArgs     = "bad_extra_args"
	KeyBadOutputDir     = "bad_output_dir"
	KeyErrorOpeningDir  = "error_opening_dir"
)

// translations holds the bundled UI strings per language code
var translations = map[string]map[string]string{
	"en": {
		KeyAppTitle:         "spotDL GUI Downloader",
		KeyQueriesLabel:     "Spotify URLs:",
		KeyQueriesHint:      "Track, album, playlist or artist URLs, separated by spaces or newlines",
		KeyOperation:        "Operation:",
		KeyRun:              "Run",
		KeyStop:             "Stop",
		KeyClearLog:         "Clear Log",
		KeyBrowse:           "Browse",
		KeyDownloadOptions:  "Download Options",
		KeyAdvancedOptions:  "Advanced",
		KeyOutputDirectory:  "Output Directory:",
		KeyAudioFormat:      "Audio Format:",
		KeyBitrate:          "Bitrate:",
		KeyThreads:          "Threads:",
		KeyOverwrite:        "Overwrite:",
		KeyEmbedLyrics:      "Embed Lyrics",
		KeyEmbedMetadata:    "Embed Metadata (Art, Info)",
		KeySponsorBlock:     "Enable SponsorBlock (YouTube)",
		KeySaveFile:         "Save/Sync File (.spotdl):",
		KeyArchiveFile:      "Archive File:",
		KeySearchQuery:      "Custom Search Query:",
		KeyPlaylistStart:    "Playlist Start:",
		KeyPlaylistEnd:      "Playlist End:",
		KeyExtraArgs:        "Additional Arguments:",
		KeyOutputLog:        "Output Log:",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyStatusReady:      "Ready",
		KeyStatusInProgress: "%s in progress...",
		KeyStatusCompleted:  "%s Completed.",
		KeyStatusFailed:     "%s Failed.",
		KeyStatusStopped:    "%s Stopped.",
		KeyNoQueries:        "Error: No Spotify URLs provided.",
		KeySaveFileRequired: "Error: A save file path is required for saving metadata.",
		KeyJobActive:        "A job is already running. Stop it first.",
		KeyLogCleared:       "Log cleared.",
		KeyBadExtraArgs:     "Warning: Could not parse additional arguments",
		KeyBadOutputDir:     "Warning: Output directory is invalid",
		KeyErrorOpeningDir:  "Could not open folder",
	},

	"ru": {
		KeyAppTitle:         "spotDL Загрузчик",
		KeyQueriesLabel:     "Ссылки Spotify:",
		KeyQueriesHint:      "URL трека, альбома, плейлиста или исполнителя, через пробел или с новой строки",
		KeyOperation:        "Операция:",
		KeyRun:              "Запустить",
		KeyStop:             "Стоп",
		KeyClearLog:         "Очистить лог",
		KeyBrowse:           "Обзор",
		KeyDownloadOptions:  "Параметры загрузки",
		KeyAdvancedOptions:  "Дополнительно",
		KeyOutputDirectory:  "Папка загрузки:",
		KeyAudioFormat:      "Формат аудио:",
		KeyBitrate:          "Битрейт:",
		KeyThreads:          "Потоки:",
		KeyOverwrite:        "Перезапись:",
		KeyEmbedLyrics:      "Встраивать тексты песен",
		KeyEmbedMetadata:    "Встраивать метаданные (обложка, инфо)",
		KeySponsorBlock:     "Включить SponsorBlock (YouTube)",
		KeySaveFile:         "Файл сохранения (.spotdl):",
		KeyArchiveFile:      "Файл архива:",
		KeySearchQuery:      "Свой поисковый запрос:",
		KeyPlaylistStart:    "Начало плейлиста:",
		KeyPlaylistEnd:      "Конец плейлиста:",
		KeyExtraArgs:        "Дополнительные аргументы:",
		KeyOutputLog:        "Журнал вывода:",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyStatusReady:      "Готово",
		KeyStatusInProgress: "%s выполняется...",
		KeyStatusCompleted:  "%s завершено.",
		KeyStatusFailed:     "%s не удалось.",
		KeyStatusStopped:    "%s остановлено.",
		KeyNoQueries:        "Ошибка: ссылки Spotify не указаны.",
		KeySaveFileRequired: "Ошибка: для сохранения метаданных нужен путь к файлу.",
		KeyJobActive:        "Задача уже выполняется. Сначала остановите её.",
		KeyLogCleared:       "Лог очищен.",
		KeyBadExtraArgs:     "Предупреждение: не удалось разобрать дополнительные аргументы",
		KeyBadOutputDir:     "Предупреждение: папка загрузки недоступна",
		KeyErrorOpeningDir:  "Не удалось открыть папку",
	},

	"pt": {
		KeyAppTitle:         "spotDL GUI Downloader",
		KeyQueriesLabel:     "URLs do Spotify:",
		KeyQueriesHint:      "URLs de faixa, álbum, playlist ou artista, separadas por espaços ou quebras de linha",
		KeyOperation:        "Operação:",
		KeyRun:              "Executar",
		KeyStop:             "Parar",
		KeyClearLog:         "Limpar Log",
		KeyBrowse:           "Navegar",
		KeyDownloadOptions:  "Opções de Download",
		KeyAdvancedOptions:  "Avançado",
		KeyOutputDirectory:  "Diretório de Saída:",
		KeyAudioFormat:      "Formato de Áudio:",
		KeyBitrate:          "Taxa de Bits:",
		KeyThreads:          "Threads:",
		KeyOverwrite:        "Sobrescrever:",
		KeyEmbedLyrics:      "Incorporar Letras",
		KeyEmbedMetadata:    "Incorporar Metadados (Capa, Info)",
		KeySponsorBlock:     "Ativar SponsorBlock (YouTube)",
		KeySaveFile:         "Arquivo de Salvamento (.spotdl):",
		KeyArchiveFile:      "Arquivo de Registro:",
		KeySearchQuery:      "Consulta de Busca Personalizada:",
		KeyPlaylistStart:    "Início da Playlist:",
		KeyPlaylistEnd:      "Fim da Playlist:",
		KeyExtraArgs:        "Argumentos Adicionais:",
		KeyOutputLog:        "Log de Saída:",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyStatusReady:      "Pronto",
		KeyStatusInProgress: "%s em andamento...",
		KeyStatusCompleted:  "%s Concluído.",
		KeyStatusFailed:     "%s Falhou.",
		KeyStatusStopped:    "%s Interrompido.",
		KeyNoQueries:        "Erro: nenhuma URL do Spotify informada.",
		KeySaveFileRequired: "Erro: um arquivo de salvamento é necessário para salvar metadados.",
		KeyJobActive:        "Uma tarefa já está em execução. Pare-a primeiro.",
		KeyLogCleared:       "Log limpo.",
		KeyBadExtraArgs:     "Aviso: não foi possível interpretar os argumentos adicionais",
		KeyBadOutputDir:     "Aviso: diretório de saída inválido",
		KeyErrorOpeningDir:  "Não foi possível abrir a pasta",
	},
}

// languageNames maps each bundled language to its native display name
var languageNames = map[string]string{
	"en": "English",
	"ru": "Русский",
	"pt": "Português",
}

// Localization resolves user-visible text for the selected language
type Localization struct {
	lang string
}

// NewLocalization starts out in English
func NewLocalization() *Localization {
	return &Localization{lang: "en"}
}

// SetLanguage switches the active language. The "system" choice maps to
// English, and unknown codes leave the current language in place.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}
	if _, ok := translations[lang]; ok {
		l.lang = lang
	}
}

// GetText resolves key in the active language, falling back to English
// and finally to the key itself.
func (l *Localization) GetText(key string) string {
	if text, ok := translations[l.lang][key]; ok {
		return text
	}
	if text, ok := translations["en"][key]; ok {
		return text
	}
	return key
}

// GetCurrentLanguage reports the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.lang
}

// GetAvailableLanguages lists the bundled languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return languageNames
}
