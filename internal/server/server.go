// internal/server/server.go

// Package server exposes the conversation pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"loksarthi/internal/common/logger"
	"loksarthi/internal/models"
	"loksarthi/internal/orchestrator"
	"loksarthi/internal/scheme"
)

// SessionStore is the session persistence the handlers need.
type SessionStore interface {
	GetOrCreate(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore persists long-lived citizen profiles across sessions.
type ProfileStore interface {
	SaveProfile(ctx context.Context, userID string, profile *models.CitizenProfile) error
	GetProfile(ctx context.Context, userID string) (*models.CitizenProfile, error)
}

// MessageProcessor runs one conversational turn.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, session *models.Session, userMessage string) *orchestrator.Response
}

// Options wires the server's collaborators. Profiles is optional.
type Options struct {
	Processor      MessageProcessor
	Sessions       SessionStore
	Profiles       ProfileStore
	Catalog        *scheme.Catalog
	RequestTimeout time.Duration
	AllowedOrigins []string
	Version        string
	Logger         logger.Logger
}

// Server is the HTTP API for the citizen services platform.
type Server struct {
	processor MessageProcessor
	sessions  SessionStore
	profiles  ProfileStore
	catalog   *scheme.Catalog
	timeout   time.Duration
	origins   []string
	version   string
	logger    logger.Logger
}

func New(opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{
		processor: opts.Processor,
		sessions:  opts.Sessions,
		profiles:  opts.Profiles,
		catalog:   opts.Catalog,
		timeout:   opts.RequestTimeout,
		origins:   opts.AllowedOrigins,
		version:   opts.Version,
		logger:    opts.Logger.WithFields(map[string]interface{}{"component": "http-server"}),
	}
}

// Handler builds the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)
	api.HandleFunc("/voice", s.handleVoice).Methods(http.MethodPost)
	api.HandleFunc("/schemes", s.handleListSchemes).Methods(http.MethodGet)
	api.HandleFunc("/session/{session_id}", s.handleDeleteSession).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := recoveryMiddleware(s.logger)(router)
	handler = loggingMiddleware(s.logger)(handler)
	return c.Handler(handler)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "LokSarthi",
		"version": s.version,
	})
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Language  string `json:"language,omitempty"`
}

// ChatResponse is the body of a successful chat turn.
type ChatResponse struct {
	Text        string                 `json:"text"`
	AudioBase64 string                 `json:"audio_base64,omitempty"`
	Language    string                 `json:"language"`
	Pillar      string                 `json:"pillar"`
	SessionID   string                 `json:"session_id"`
	Schemes     []models.MatchedScheme `json:"schemes"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	session, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		s.logger.Error("session load failed", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		writeError(w, http.StatusServiceUnavailable, "Session store unavailable")
		return
	}

	if req.UserID != "" {
		session.UserID = req.UserID
		// A returning citizen's stored profile seeds a fresh session so the
		// profiling questions are not asked again.
		if s.profiles != nil && session.Profile.CompletenessScore() == 0 {
			stored, err := s.profiles.GetProfile(ctx, req.UserID)
			if err != nil {
				s.logger.Warn("profile load failed", map[string]interface{}{
					"user_id": req.UserID,
					"error":   err.Error(),
				})
			} else if stored != nil {
				session.Profile = *stored
			}
		}
	}
	if orchestrator.IsSupportedLanguage(req.Language) {
		session.Language = req.Language
	}

	result := s.processor.ProcessMessage(ctx, session, req.Message)

	if err := s.sessions.Save(ctx, session); err != nil {
		// The turn already happened; losing one save costs at most some
		// context on the next turn.
		s.logger.Error("session save failed", map[string]interface{}{
			"session_id": session.SessionID,
			"error":      err.Error(),
		})
	}

	if s.profiles != nil && session.UserID != "" {
		if err := s.profiles.SaveProfile(ctx, session.UserID, &session.Profile); err != nil {
			s.logger.Error("profile save failed", map[string]interface{}{
				"user_id": session.UserID,
				"error":   err.Error(),
			})
		}
	}

	schemes := result.Schemes
	if schemes == nil {
		schemes = []models.MatchedScheme{}
	}
	writeJSON(w, http.StatusOK, ChatResponse{
		Text:        result.Text,
		AudioBase64: result.AudioBase64,
		Language:    result.Language,
		Pillar:      result.Pillar,
		SessionID:   session.SessionID,
		Schemes:     schemes,
	})
}

// VoiceRequest is the body of POST /api/voice.
type VoiceRequest struct {
	AudioBase64 string `json:"audio_base64"`
	SessionID   string `json:"session_id,omitempty"`
	Language    string `json:"language,omitempty"`
}

// handleVoice acknowledges audio input. Transcription needs an async speech
// recognition pipeline that is not built yet, so callers are pointed at the
// text endpoint.
func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	var req VoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.AudioBase64 == "" {
		writeError(w, http.StatusBadRequest, "audio_base64 is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = models.NewSession("").SessionID
	}
	language := req.Language
	if language == "" {
		language = models.DefaultLanguage
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"text":         "Voice input received. Please use text input for now, voice transcription will be available soon.",
		"audio_base64": nil,
		"language":     language,
		"pillar":       models.PillarGreeting,
		"session_id":   sessionID,
		"schemes":      []models.MatchedScheme{},
	})
}

// schemeListing is the catalog entry shape exposed over the API.
type schemeListing struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NameHindi string `json:"name_hi"`
	Benefit   string `json:"benefit"`
	Ministry  string `json:"ministry"`
	Type      string `json:"type"`
	ApplyURL  string `json:"apply_url"`
}

func (s *Server) handleListSchemes(w http.ResponseWriter, _ *http.Request) {
	schemes := s.catalog.Schemes()
	listings := make([]schemeListing, 0, len(schemes))
	for _, sc := range schemes {
		listings = append(listings, schemeListing{
			ID:        sc.SchemeID,
			Name:      sc.Name,
			NameHindi: sc.NameHindi,
			Benefit:   sc.BenefitAmount,
			Ministry:  sc.Ministry,
			Type:      sc.BenefitType,
			ApplyURL:  sc.ApplyURL,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(listings),
		"schemes": listings,
	})
}

// handleDeleteSession erases a session on request, backing the right to
// erasure under the DPDP Act.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	if err := s.sessions.Delete(r.Context(), sessionID); err != nil {
		s.logger.Error("session delete failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		writeError(w, http.StatusServiceUnavailable, "Session store unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "deleted",
		"session_id": sessionID,
	})
}
