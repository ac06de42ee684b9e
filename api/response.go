package api

import (
  "bytes"
  "encoding/json"
  "net/http"

  "scraper.local/hltv-scraper/common"
)

type ResponseHandler struct {
  Writer http.ResponseWriter
}

type ErrorInfo struct {
  Error string `json:"error"`
}

func (h *ResponseHandler) Json(status int, data interface{}) {
  buf, err := encode(data)
  if err != nil {
    common.Logger.Error().Err(err).Msg("response can not be encoded")
    status = http.StatusInternalServerError
    buf, _ = encode(&ErrorInfo{Error: http.StatusText(status)})
  }
  h.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
  h.Writer.WriteHeader(status)
  h.Writer.Write(buf)
}

// encode keeps <, > and & literal in the body.
func encode(data interface{}) ([]byte, error) {
  var buf bytes.Buffer
  enc := json.NewEncoder(&buf)
  enc.SetEscapeHTML(false)
  if err := enc.Encode(data); err != nil {
    return nil, err
  }
  return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (h *ResponseHandler) Success(data interface{}) {
  h.Json(http.StatusOK, data)
}

func (h *ResponseHandler) Error(status int, message string) {
  h.Json(status, &ErrorInfo{Error: message})
}
