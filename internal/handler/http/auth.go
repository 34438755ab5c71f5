package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// loginForm is the JSON variant of the OAuth2 password form.
type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, registeredUser.Public(), http.StatusOK)
}

// login accepts application/x-www-form-urlencoded (or multipart) fields
// "username" and "password"; a JSON body with the same keys works too.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := readLoginForm(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.Credentials{Email: form.Username, Password: form.Password})
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AccessTokenResponse{
		AccessToken: token.String(),
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func readLoginForm(w http.ResponseWriter, r *http.Request) (loginForm, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var form loginForm
		err := decodeJSON(w, r, &form)
		return form, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return loginForm{}, ErrInvalidBody
		}
	} else if err := r.ParseForm(); err != nil {
		return loginForm{}, ErrInvalidBody
	}

	return loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}
