package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formview/pkg/form"
	"github.com/goliatone/go-formview/pkg/render/html"
	"github.com/goliatone/go-formview/pkg/widgets/web"
)

// handler serves a form. Every request builds its own form, so submitted
// text never outlives the request. GET renders it; POST decodes the
// submission, resolves it and answers with the model as JSON or the
// annotated form.
type handler[M any] struct {
	newForm  func() (*form.Form[M], error)
	renderer *html.Renderer
	newModel func() M
	title    string
}

func (h *handler[M]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := h.newForm()
	if err != nil {
		logger.Error("build form", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.Decode(f, r.PostForm)
		model := h.newModel()
		res := f.Resolve(&model)
		web.Annotate(f, res)
		if res.OK {
			w.Header().Set("Content-Type", "application/json")
			if err := writeModel(w, model); err != nil {
				logger.Error("write model", zap.Error(err))
			}
			return
		}
		status = http.StatusUnprocessableEntity
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	page, err := h.renderer.Render(r.Context(), f, html.Request{Method: "post", Title: h.title})
	if err != nil {
		logger.Error("render form", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(page)
}

func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	logger.Info("serving form", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
