package models

// TranslationRequest is the inbound relay contract.
type TranslationRequest struct {
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
	TextList   []string `json:"text_list"`
}

// TranslationResult pairs one input text with its translation.
// Lengths are rune counts, not byte counts.
type TranslationResult struct {
	Original       string `json:"original"`
	OriginalLength int    `json:"original_length"`
	Result         string `json:"result"`
	ResultLength   int    `json:"result_length"`
}

// Response is the uniform envelope for every reply the relay sends.
// Data carries the result list on success, an empty list on preflight
// and null on errors.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
