package transmart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"transmart_relay/pkg/clientkey"
)

// DefaultEndpoint is the public Transmart machine-translation API.
const DefaultEndpoint = "https://transmart.qq.com/api/imt"

// retCodeSucc is the success marker inside the upstream body,
// independent of the outer HTTP status.
const retCodeSucc = "succ"

type Header struct {
	Fn        string `json:"fn"`
	Session   string `json:"session"`
	ClientKey string `json:"client_key"`
	User      string `json:"user"`
}

type Source struct {
	Lang     string   `json:"lang"`
	TextList []string `json:"text_list"`
}

type Target struct {
	Lang string `json:"lang"`
}

// Payload is the wire shape Transmart expects. Session, user and
// text_domain stay empty; fn, type and model_category are fixed.
type Payload struct {
	Header        Header `json:"header"`
	Type          string `json:"type"`
	ModelCategory string `json:"model_category"`
	TextDomain    string `json:"text_domain"`
	Source        Source `json:"source"`
	Target        Target `json:"target"`
}

// NewPayload builds a fresh outbound payload. The client key is
// generated per call so every request presents a distinct browser
// identity to the upstream.
func NewPayload(sourceLang string, targetLang string, texts []string) Payload {
	return Payload{
		Header: Header{
			Fn:        "auto_translation",
			Session:   "",
			ClientKey: clientkey.New(),
			User:      "",
		},
		Type:          "plain",
		ModelCategory: "normal",
		TextDomain:    "",
		Source: Source{
			Lang:     sourceLang,
			TextList: texts,
		},
		Target: Target{
			Lang: targetLang,
		},
	}
}

type apiResponse struct {
	Header struct {
		RetCode string `json:"ret_code"`
	} `json:"header"`
	AutoTranslation []string `json:"auto_translation"`
}

// HTTPError reports a non-200 HTTP status from the upstream.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
}

// RetCodeError reports an upstream reply that cannot be used: a body
// that does not decode, a ret_code other than "succ", or fewer
// translations than requested texts.
type RetCodeError struct {
	StatusCode int
	RetCode    string
}

func (e *RetCodeError) Error() string {
	return fmt.Sprintf("upstream translation failed (status %d, ret_code %q)", e.StatusCode, e.RetCode)
}

// Client issues translation calls against a single Transmart endpoint.
type Client struct {
	endpoint string
	hc       *http.Client
}

func NewClient(endpoint string, hc *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, hc: hc}
}

// Translate sends texts for translation and returns the translated
// strings in input order, one per input text. Transport failures come
// back as-is; upstream failures come back as *HTTPError or
// *RetCodeError so callers can map them onto their own contract.
func (c *Client) Translate(ctx context.Context, sourceLang string, targetLang string, texts []string) ([]string, error) {
	payload := NewPayload(sourceLang, targetLang, texts)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &RetCodeError{StatusCode: resp.StatusCode}
	}

	if out.Header.RetCode != retCodeSucc {
		return nil, &RetCodeError{StatusCode: resp.StatusCode, RetCode: out.Header.RetCode}
	}

	if len(out.AutoTranslation) < len(texts) {
		return nil, &RetCodeError{StatusCode: resp.StatusCode, RetCode: out.Header.RetCode}
	}

	return out.AutoTranslation[:len(texts)], nil
}
