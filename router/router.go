// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/parent-pulse/cliparse"
	"github.com/danielhkuo/parent-pulse/forward"
	"github.com/danielhkuo/parent-pulse/handlers"
	"github.com/danielhkuo/parent-pulse/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	fwd := forward.New(cfg.WebhookURL)
	submitHandler := handlers.NewSubmitHandler(db, cfg, fwd)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", adminHandler.Health)

	// Survey ingestion (public)
	mux.HandleFunc("POST /submissions", middleware.WithLogging(submitHandler.Submit))

	// Admin operations (token-gated)
	mux.HandleFunc("GET /admin/summary", middleware.WithLogging(adminHandler.GetSummary))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("parent-pulse API v1"))
	})

	return mux
}
