// Package server exposes the reconciliation engine over HTTP: a
// new-item webhook receiver, task-trigger endpoints for the
// orchestrator, and read endpoints over the persisted collection,
// watchlist, and actor subscription state.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/manager"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response,omitempty"`
}

// Server houses every dependency the HTTP surface needs: a logger, the
// task orchestrator, and direct storage access for read-only endpoints.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    manager.Manager
	scheduler  *manager.Scheduler
	storage    storage.Storage
	config     config.Server
}

// New creates a new HTTP server.
func New(baseLogger *zap.SugaredLogger, m manager.Manager, scheduler *manager.Scheduler, store storage.Storage, cfg config.Server) Server {
	return Server{
		baseLogger: baseLogger,
		manager:    m,
		scheduler:  scheduler,
		storage:    store,
		config:     cfg,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	writeResponse(w, status, GenericResponse{Error: errMsg})
}

func writeResponse(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	w.Write(b)
}

// Router builds the mux router without starting a listener, so tests can
// drive it directly with httptest.
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/webhook/item-added", s.ItemAddedWebhook()).Methods(http.MethodPost)

	v1.HandleFunc("/tasks/cancel-all", s.CancelAllTasks()).Methods(http.MethodPost)
	v1.HandleFunc("/tasks/{task}", s.RunTask()).Methods(http.MethodPost)

	v1.HandleFunc("/collections", s.ListCollections()).Methods(http.MethodGet)
	v1.HandleFunc("/collections/{id}", s.GetCollection()).Methods(http.MethodGet)
	v1.HandleFunc("/native-collections", s.ListNativeCollections()).Methods(http.MethodGet)
	v1.HandleFunc("/watchlist", s.ListWatchlist()).Methods(http.MethodGet)
	v1.HandleFunc("/actor-subscriptions", s.ListActorSubscriptions()).Methods(http.MethodGet)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{"Content-Length"}),
		handlers.MaxAge(3600),
	)(rtr)
}

// Serve starts the http server and is a blocking call; it returns once
// the process receives SIGINT and the server finishes a graceful
// shutdown.
func (s Server) Serve(port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	s.scheduler.CancelAll()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// RunTask triggers an orchestrator task by its key and blocks until it
// finishes. collection_id and subscription_id are accepted as optional
// query parameters for process-single-custom-collection/scan-actor-media.
func (s Server) RunTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		task := manager.TaskKey(mux.Vars(r)["task"])

		req := manager.RunRequest{Task: task}
		if idStr := r.URL.Query().Get("collection_id"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				writeErrorResponse(w, http.StatusBadRequest, err)
				return
			}
			req.CollectionID = id
		}
		if idStr := r.URL.Query().Get("subscription_id"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				writeErrorResponse(w, http.StatusBadRequest, err)
				return
			}
			req.SubscriptionID = id
		}

		if err := s.scheduler.Run(r.Context(), req, nil); err != nil {
			log.Debug("task run failed", zap.String("task", string(task)), zap.Error(err))
			writeErrorResponse(w, http.StatusConflict, err)
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// CancelAllTasks signals every in-flight orchestrator run to stop.
func (s Server) CancelAllTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.scheduler.CancelAll()
		writeResponse(w, http.StatusOK, GenericResponse{Response: "ok"})
	}
}

// ListCollections lists every custom collection's current snapshot.
func (s Server) ListCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		collections, err := s.storage.ListCustomCollections(r.Context())
		if err != nil {
			log.Error("failed to list collections", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: collections})
	}
}

// GetCollection fetches one custom collection by id.
func (s Server) GetCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		c, err := s.storage.GetCustomCollection(r.Context(), id)
		if err != nil {
			log.Debug("failed to get collection", zap.Int64("id", id), zap.Error(err))
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: c})
	}
}

// ListNativeCollections lists every TMDb-franchise shadow collection.
func (s Server) ListNativeCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		collections, err := s.storage.ListNativeCollections(r.Context())
		if err != nil {
			log.Error("failed to list native collections", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: collections})
	}
}

// ListWatchlist lists every tracked series.
func (s Server) ListWatchlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		entries, err := s.storage.ListWatchlist(r.Context())
		if err != nil {
			log.Error("failed to list watchlist", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: entries})
	}
}

// ListActorSubscriptions lists every active actor subscription.
func (s Server) ListActorSubscriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		subs, err := s.storage.ListActiveActorSubscriptions(r.Context())
		if err != nil {
			log.Error("failed to list actor subscriptions", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		writeResponse(w, http.StatusOK, GenericResponse{Response: subs})
	}
}
