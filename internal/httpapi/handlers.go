/*
NAME
  handlers.go

DESCRIPTION
  handlers.go implements the POST /api/embed handler: multipart decoding,
  validation (spec §6), dispatch to the core or tiled pipeline, and JSON
  response encoding.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"gocv.io/x/gocv"

	"github.com/ausocean/watermark/internal/tilewm"
	"github.com/ausocean/watermark/internal/watermark"
)

// successResponse is the ok=true JSON body (spec §6).
type successResponse struct {
	OK          bool   `json:"ok"`
	TemplateID  string `json:"template_id"`
	WmID        uint32 `json:"wm_id"`
	ImageBase64 string `json:"image_base64"`
	ImageMIME   string `json:"image_mime"`
}

// failureResponse is the ok=false JSON body (spec §6).
type failureResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

// embed handles POST /api/embed.
func (h *handler) embed(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("panic handling /api/embed", "recover", rec)
			writeError(w, internalError(fmt.Sprintf("%v", rec)))
		}
	}()

	if r.Method != http.MethodPost {
		writeError(w, inputRejected("method not allowed"))
		return
	}

	result, err := h.doEmbed(r)
	if err != nil {
		ae, ok := err.(*apiError)
		if !ok {
			ae = internalError(err.Error())
		}
		h.log.Warn("embed failed", "reason", ae.reason, "kind", ae.k)
		writeError(w, ae)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *handler) doEmbed(r *http.Request) (*successResponse, error) {
	const maxUploadBytes = 64 << 20 // generous multipart memory cap.
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, inputRejected("could not parse multipart form: " + err.Error())
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		return nil, inputRejected("missing required field: image")
	}
	defer file.Close()

	imgBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, inputRejected("could not read image: " + err.Error())
	}

	idStr := r.FormValue("id")
	keyStr := r.FormValue("key")
	if idStr == "" || keyStr == "" {
		return nil, inputRejected("missing required field: id or key")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, inputRejected("invalid id: " + err.Error())
	}
	key, err := strconv.ParseUint(keyStr, 10, 64)
	if err != nil {
		return nil, inputRejected("invalid key: " + err.Error())
	}

	margin := h.cfg.DefaultMargin
	if v := r.FormValue("margin"); v != "" {
		margin, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, inputRejected("invalid margin: " + err.Error())
		}
	}
	gridAmp := h.cfg.DefaultGridAmp
	if v := r.FormValue("grid_amp"); v != "" {
		gridAmp, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, inputRejected("invalid grid_amp: " + err.Error())
		}
	}
	mode := r.FormValue("mode")
	if mode == "" {
		mode = "core"
	}

	src, err := gocv.IMDecode(imgBytes, gocv.IMReadColor)
	if err != nil || src.Empty() {
		return nil, inputRejected("could not decode image")
	}
	defer src.Close()

	pixelCount := src.Rows() * src.Cols()
	if pixelCount > h.cfg.MaxPixels {
		return nil, inputRejected("too large")
	}

	templateID := watermark.TemplateID(src.ToBytes(), src.Cols(), src.Rows())

	wmCfg := watermark.Config{ID: uint32(id), Key: key, Margin: margin, GridAmp: gridAmp}

	var out gocv.Mat
	switch mode {
	case "core":
		out, err = watermark.Embed(src, wmCfg)
	case "tiled":
		out, err = tilewm.Embed(src, wmCfg, h.cfg.Tiled)
	default:
		return nil, inputRejected("unknown mode: " + mode)
	}
	if err != nil {
		return nil, internalError(err.Error())
	}
	defer out.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, out)
	if err != nil {
		return nil, encodingFailed(err.Error())
	}
	defer buf.Close()

	return &successResponse{
		OK:          true,
		TemplateID:  templateID,
		WmID:        uint32(id) & 0xFFFFF,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.GetBytes()),
		ImageMIME:   "image/png",
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, ae *apiError) {
	writeJSON(w, ae.statusCode(), failureResponse{OK: false, Reason: ae.reason})
}
