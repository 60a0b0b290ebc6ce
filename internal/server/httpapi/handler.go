package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

// appHandler is a handler that reports failures by returning an error
// instead of writing the response itself.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts an appHandler to http.HandlerFunc, mapping a returned error
// to a JSON error response and logging it.
func (s *Server) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		he := toHTTPError(err)
		if he.Code >= http.StatusInternalServerError {
			s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "error", err)
		} else {
			s.logger.Warn(r.Context(), "client error", "path", r.URL.Path, "method", r.Method, "code", he.Code, "msg", he.Message)
		}
		respondWithError(w, he.Code, he.Message)
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// handleSignUp registers a new user. The response is the created user only;
// the password hash never appears (excluded at the model level) and no token
// is issued, the client logs in separately.
func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) error {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errBadRequest("Invalid request payload.")
	}
	defer r.Body.Close()

	if req.Email == "" || req.Password == "" {
		return errBadRequest("Email and password are required.")
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, user)
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errBadRequest("Invalid request payload.")
	}
	defer r.Body.Close()

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// bad credentials are a 400 on this endpoint, per the API contract
			return errBadRequest("Invalid credentials.")
		}
		return err
	}

	s.logger.Info(r.Context(), "user logged in", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
	return nil
}

// handleValidate echoes the authenticated user and the presented token.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) error {
	user, ok := userFromContext(r.Context())
	if !ok {
		return common.ErrorUnauthorized
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"user": user, "token": tokenFromContext(r.Context())})
	return nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) error {
	user, ok := userFromContext(r.Context())
	if !ok {
		return common.ErrorUnauthorized
	}

	list, err := s.transactions.List(r.Context(), user.ID)
	if err != nil {
		return err
	}

	respondWithJSON(w, http.StatusOK, list)
	return nil
}

type createTransactionRequest struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) error {
	user, ok := userFromContext(r.Context())
	if !ok {
		return common.ErrorUnauthorized
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errBadRequest("Invalid request payload.")
	}
	defer r.Body.Close()

	tr, err := s.transactions.Create(r.Context(), user.ID, req.Amount, req.Recipient)
	if err != nil {
		return err
	}

	s.logger.Info(r.Context(), "transaction created", "user_id", user.ID, "transaction_id", tr.ID)
	respondWithJSON(w, http.StatusOK, tr)
	return nil
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
