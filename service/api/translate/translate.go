package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"transmart_relay/config"
	"transmart_relay/models/models"
	"transmart_relay/pkg/httpclient"
	"transmart_relay/pkg/logger"
	responsex "transmart_relay/pkg/response"
	"transmart_relay/pkg/transmart"
)

func upstreamClient() *transmart.Client {
	return transmart.NewClient(config.Cfg.Upstream.Endpoint, httpclient.Client.Client)
}

// Preflight answers CORS preflight with the standard envelope. The
// CORS headers themselves come from the router middleware.
func Preflight(w http.ResponseWriter, r *http.Request) {
	responsex.RespondWithJSON(w, http.StatusOK, models.Response{
		Code:    http.StatusOK,
		Message: "OK",
		Data:    []models.TranslationResult{},
	})
}

// MethodNotAllowed rejects every method other than POST and OPTIONS.
// The contract reports 400 here, not 405.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	responsex.RespondWithJSON(w, http.StatusBadRequest, models.Response{
		Code:    http.StatusBadRequest,
		Message: "Invalid Request Method. Only POST method is allowed.",
		Data:    nil,
	})
}

// Translate relays one translation request to the upstream and
// normalizes the reply.
func Translate(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		responsex.RespondWithJSON(w, http.StatusBadRequest, models.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid Request Content Type. Only JSON content is allowed.",
			Data:    nil,
		})
		return
	}

	// Malformed JSON and wrong field types land here too and get the
	// same rejection as a structurally invalid payload.
	var requestData models.TranslationRequest
	err := json.NewDecoder(r.Body).Decode(&requestData)
	if err != nil || !validRequest(requestData) {
		responsex.RespondWithJSON(w, http.StatusBadRequest, models.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON Data. Please provide valid source_lang, target_lang, and non-empty text_list.",
			Data:    nil,
		})
		return
	}

	results, err := upstreamClient().Translate(r.Context(), requestData.SourceLang, requestData.TargetLang, requestData.TextList)
	if err != nil {
		logger.Logger.Error("upstream translation call failed", "error", err.Error())

		var httpErr *transmart.HTTPError
		var retErr *transmart.RetCodeError
		switch {
		case errors.As(err, &httpErr):
			responsex.RespondWithJSON(w, httpErr.StatusCode, models.Response{
				Code:    httpErr.StatusCode,
				Message: fmt.Sprintf("HTTP Error: %d", httpErr.StatusCode),
				Data:    nil,
			})
		case errors.As(err, &retErr):
			responsex.RespondWithJSON(w, retErr.StatusCode, models.Response{
				Code:    retErr.StatusCode,
				Message: "Translation Error",
				Data:    nil,
			})
		default:
			// Transport failure: the upstream never answered.
			responsex.RespondWithJSON(w, http.StatusBadGateway, models.Response{
				Code:    http.StatusBadGateway,
				Message: fmt.Sprintf("HTTP Error: %d", http.StatusBadGateway),
				Data:    nil,
			})
		}
		return
	}

	data := make([]models.TranslationResult, len(requestData.TextList))
	for i, text := range requestData.TextList {
		data[i] = models.TranslationResult{
			Original:       text,
			OriginalLength: utf8.RuneCountInString(text),
			Result:         results[i],
			ResultLength:   utf8.RuneCountInString(results[i]),
		}
	}

	responsex.RespondWithJSON(w, http.StatusOK, models.Response{
		Code:    http.StatusOK,
		Message: "Translation Successful",
		Data:    data,
	})
}

func validRequest(req models.TranslationRequest) bool {
	if strings.TrimSpace(req.SourceLang) == "" || strings.TrimSpace(req.TargetLang) == "" {
		return false
	}

	if len(req.TextList) == 0 {
		return false
	}

	for _, text := range req.TextList {
		if strings.TrimSpace(text) == "" {
			return false
		}
	}

	return true
}
