package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cumaker/makerspace/internal/makerspace"
)

type ctxKey int

const (
	ctxKeyEquipment ctxKey = iota
	ctxKeyQuiz
)

func equipmentMiddleware(cat *makerspace.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e, err := cat.Registry().Get(chi.URLParam(r, "id"))
			if err != nil {
				writeError(w, http.StatusNotFound, "equipment not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyEquipment, e)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func trackMiddleware(cat *makerspace.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q, err := cat.Quiz(chi.URLParam(r, "trackID"))
			if err != nil {
				writeError(w, http.StatusNotFound, "track not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyQuiz, q)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func equipmentFrom(r *http.Request) makerspace.Equipment {
	return r.Context().Value(ctxKeyEquipment).(makerspace.Equipment)
}

func quizFrom(r *http.Request) makerspace.Quiz {
	return r.Context().Value(ctxKeyQuiz).(makerspace.Quiz)
}
