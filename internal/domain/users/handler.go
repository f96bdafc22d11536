package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/platform/httpjson"
	"pet-care-hub/internal/ports/auth"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
	})

	r.Get("/me", meHandler(svc))
	r.Patch("/me", updateMeHandler(svc))

	// Administración de roles (solo admin)
	r.Patch("/users/{userID}/role", setRoleHandler(svc))
}

type registerRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateMeRequest struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Location    *string `json:"location"`
	Bio         *string `json:"bio"`
}

type setRoleRequest struct {
	Role Role `json:"role" enums:"owner,moderator,admin"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea la cuenta, abre sesión y devuelve token + perfil.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de registro"
// @Success 201 {object} Session
// @Failure 400 {object} map[string]any "validación"
// @Failure 409 {object} map[string]string "email already registered"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Register(r.Context(), RegisterInput{
			DisplayName: req.DisplayName,
			Email:       req.Email,
			Password:    req.Password,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, sess)
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Con el autenticador mock cualquier email/password no vacío es válido. El usuario se crea en el primer login.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} Session
// @Failure 401 {object} map[string]string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, sess)
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra el documento de sesión; el token deja de ser válido.
// @Tags auth
// @Param Authorization header string false "Bearer token"
// @Success 204
// @Router /auth/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if ok {
			if err := svc.Logout(r.Context(), claims.SessionID); err != nil {
				httpjson.Internal(w, r, err)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// meHandler godoc
// @Summary Perfil actual
// @Tags auth
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} User
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me [get]
func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		u, err := svc.Me(r.Context(), claims.UserID, claims.SessionID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, u)
	}
}

// updateMeHandler godoc
// @Summary Editar perfil
// @Description PATCH parcial: solo se tocan los campos enviados. También reescribe el documento de sesión.
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body updateMeRequest true "Campos a modificar"
// @Success 200 {object} User
// @Failure 400 {object} map[string]any "validación"
// @Failure 401 {object} map[string]string "unauthorized"
// @Router /me [patch]
func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req updateMeRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, claims.SessionID, UpdateProfileInput{
			DisplayName: req.DisplayName,
			AvatarURL:   req.AvatarURL,
			Location:    req.Location,
			Bio:         req.Bio,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, u)
	}
}

// setRoleHandler godoc
// @Summary Cambiar rol de un usuario
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body setRoleRequest true "Nuevo rol"
// @Success 200 {object} User
// @Failure 403 {object} map[string]string "forbidden"
// @Failure 404 {object} map[string]string "user not found"
// @Router /users/{userID}/role [patch]
func setRoleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req setRoleRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.SetRole(r.Context(), claims.UserID, chi.URLParam(r, "userID"), req.Role)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpjson.Write(w, http.StatusOK, u)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpjson.Invalid(w, err)
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrForbidden):
		httpjson.Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrEmailTaken):
		httpjson.Error(w, http.StatusConflict, err.Error())
	default:
		httpjson.Internal(w, r, err)
	}
}
