package dto

// LookupResponse - ответ lookup: лучшее место и все кандидаты в порядке
// geosearch. Пустой список кандидатов - валидный ответ "ничего не найдено".
type LookupResponse struct {
	Best       *PlaceDTO  `json:"best"`
	Candidates []PlaceDTO `json:"candidates"`
}

// ConfigResponse - публичная конфигурация сервиса
type ConfigResponse struct {
	DefaultLang    string            `json:"default_lang"`
	SupportedLangs map[string]string `json:"supported_langs"`
	GeminiEnabled  bool              `json:"gemini_enabled"`
}
