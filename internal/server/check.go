package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"rotcheck/internal/ctxlog"
	"rotcheck/internal/db"
	"rotcheck/internal/rotation"
)

type checkRequest struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Mode string `json:"mode"`
}

type checkResponse struct {
	A        string        `json:"a"`
	B        string        `json:"b"`
	Mode     rotation.Mode `json:"mode"`
	Rotation bool          `json:"rotation"`
	Offset   int           `json:"offset"`
}

// Recorder persists answered checks. *db.Store implements it.
type Recorder interface {
	Record(db.Check) (uint64, error)
}

type checker struct {
	maxBodyBytes int64
	history      Recorder
}

func (c *checker) get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c.answer(w, r, checkRequest{
		A:    q.Get("a"),
		B:    q.Get("b"),
		Mode: q.Get("mode"),
	})
}

func (c *checker) post(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, c.maxBodyBytes)

	var req checkRequest
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", maxErr.Limit))
			return
		}
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}

	c.answer(w, r, req)
}

func (c *checker) answer(w http.ResponseWriter, r *http.Request, req checkRequest) {
	mode, err := rotation.ParseMode(req.Mode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	offset, ok := mode.Offset(req.A, req.B)

	log := ctxlog.Get(ctxlog.With(r.Context(), "mode", mode))
	log.Debug("checked rotation", "rotation", ok, "offset", offset)

	if c.history != nil {
		id, err := c.history.Record(db.Check{
			A:        req.A,
			B:        req.B,
			Mode:     mode,
			Rotation: ok,
			Offset:   offset,
		})
		if err != nil {
			log.Error("failed to record check", "error", err)
		} else {
			log.Debug("recorded check", "id", id)
		}
	}

	writeJSON(w, r, http.StatusOK, checkResponse{
		A:        req.A,
		B:        req.B,
		Mode:     mode,
		Rotation: ok,
		Offset:   offset,
	})
}
